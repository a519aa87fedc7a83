package storage

import "time"

// SeedDemoData loads the fixed demo rows the dashboard expects: one
// accountant user, three clients and a settings row. Seed rows carry
// hand-assigned ids and the counter resumes at 4, matching how the
// dataset has always shipped.
func (s *MemStore) SeedDemoData() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	company := "Professional Accounting Services"

	s.users[1] = User{
		ID:        1,
		Username:  "accountant",
		Password:  "password123",
		Email:     "accountant@example.com",
		Name:      "John Accountant",
		Company:   &company,
		CreatedAt: now,
	}

	seedClients := []Client{
		{
			ID:           1,
			UserID:       1,
			Name:         "Acme Corp",
			BusinessType: "LLC",
			TaxID:        strPtr("12-3456789"),
			Industry:     strPtr("Technology"),
			Email:        strPtr("contact@acmecorp.com"),
			Phone:        strPtr("(555) 123-4567"),
			Address:      strPtr("123 Business St, City, ST 12345"),
			CreatedAt:    now,
		},
		{
			ID:           2,
			UserID:       1,
			Name:         "TechStart Inc",
			BusinessType: "Corporation",
			TaxID:        strPtr("98-7654321"),
			Industry:     strPtr("Technology"),
			Email:        strPtr("info@techstart.com"),
			Phone:        strPtr("(555) 987-6543"),
			Address:      strPtr("456 Startup Ave, City, ST 12345"),
			CreatedAt:    now,
		},
		{
			ID:           3,
			UserID:       1,
			Name:         "Local Bakery",
			BusinessType: "Sole Proprietorship",
			TaxID:        strPtr("11-2233445"),
			Industry:     strPtr("Food Service"),
			Email:        strPtr("hello@localbakery.com"),
			Phone:        strPtr("(555) 111-2222"),
			Address:      strPtr("789 Main St, City, ST 12345"),
			CreatedAt:    now,
		},
	}
	for _, client := range seedClients {
		s.clients[client.ID] = client
	}

	settings := defaultSettings(1)
	settings.ID = 1
	s.settings[settings.ID] = settings

	s.nextID = 4
}

func strPtr(value string) *string {
	return &value
}

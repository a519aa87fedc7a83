package storage

import (
	"maps"
	"sort"
	"sync"
	"time"
)

// MemStore keeps every collection in process memory. A single mutex
// serializes all access, including the shared id counter, so the store
// is safe under the server's concurrent request handling. Nothing
// survives a restart.
type MemStore struct {
	mu sync.RWMutex

	users        map[int]User
	clients      map[int]Client
	invoices     map[int]Invoice
	expenses     map[int]Expense
	employees    map[int]Employee
	reports      map[int]Report
	integrations map[int]Integration
	settings     map[int]Settings

	// nextID feeds every collection; ids are unique store-wide.
	nextID int
}

var _ Store = (*MemStore)(nil)

// NewMemStore returns an empty store with ids starting at 1.
func NewMemStore() *MemStore {
	return &MemStore{
		users:        map[int]User{},
		clients:      map[int]Client{},
		invoices:     map[int]Invoice{},
		expenses:     map[int]Expense{},
		employees:    map[int]Employee{},
		reports:      map[int]Report{},
		integrations: map[int]Integration{},
		settings:     map[int]Settings{},
		nextID:       1,
	}
}

func (s *MemStore) allocateID() int {
	id := s.nextID
	s.nextID++
	return id
}

// Users

func (s *MemStore) GetUser(id int) (*User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, false
	}
	return &user, true
}

func (s *MemStore) GetUserByUsername(username string) (*User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Username == username {
			match := user
			return &match, true
		}
	}
	return nil, false
}

func (s *MemStore) GetUserByEmail(email string) (*User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Email == email {
			match := user
			return &match, true
		}
	}
	return nil, false
}

func (s *MemStore) CreateUser(insert InsertUser) *User {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := User{
		ID:        s.allocateID(),
		Username:  insert.Username,
		Password:  insert.Password,
		Email:     insert.Email,
		Name:      insert.Name,
		Company:   insert.Company,
		CreatedAt: time.Now().UTC(),
	}
	s.users[user.ID] = user
	return &user
}

// Clients

func (s *MemStore) ListClients(userID int) []Client {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := []Client{}
	for _, client := range s.clients {
		if client.UserID == userID {
			result = append(result, client)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

func (s *MemStore) GetClient(id, userID int) (*Client, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	client, ok := s.clients[id]
	if !ok || client.UserID != userID {
		return nil, false
	}
	return &client, true
}

func (s *MemStore) CreateClient(userID int, insert InsertClient) *Client {
	s.mu.Lock()
	defer s.mu.Unlock()

	client := Client{
		ID:           s.allocateID(),
		UserID:       userID,
		Name:         insert.Name,
		BusinessType: insert.BusinessType,
		TaxID:        insert.TaxID,
		Industry:     insert.Industry,
		Email:        insert.Email,
		Phone:        insert.Phone,
		Address:      insert.Address,
		CreatedAt:    time.Now().UTC(),
	}
	s.clients[client.ID] = client
	return &client
}

func (s *MemStore) UpdateClient(id, userID int, update UpdateClient) (*Client, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	client, ok := s.clients[id]
	if !ok || client.UserID != userID {
		return nil, false
	}

	applyString(&client.Name, update.Name)
	applyString(&client.BusinessType, update.BusinessType)
	applyOptional(&client.TaxID, update.TaxID)
	applyOptional(&client.Industry, update.Industry)
	applyOptional(&client.Email, update.Email)
	applyOptional(&client.Phone, update.Phone)
	applyOptional(&client.Address, update.Address)

	s.clients[id] = client
	return &client, true
}

func (s *MemStore) DeleteClient(id, userID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	client, ok := s.clients[id]
	if !ok || client.UserID != userID {
		return false
	}
	// No cascade: invoices, expenses, employees and integrations that
	// reference the client are left in place.
	delete(s.clients, id)
	return true
}

// Invoices

func (s *MemStore) ListInvoices(userID, clientID int) []Invoice {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := []Invoice{}
	for _, invoice := range s.invoices {
		if invoice.UserID == userID && (clientID == 0 || invoice.ClientID == clientID) {
			result = append(result, invoice)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

func (s *MemStore) GetInvoice(id, userID int) (*Invoice, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	invoice, ok := s.invoices[id]
	if !ok || invoice.UserID != userID {
		return nil, false
	}
	return &invoice, true
}

func (s *MemStore) CreateInvoice(userID int, insert InsertInvoice) *Invoice {
	s.mu.Lock()
	defer s.mu.Unlock()

	invoice := Invoice{
		ID:            s.allocateID(),
		UserID:        userID,
		ClientID:      insert.ClientID,
		InvoiceNumber: insert.InvoiceNumber,
		Amount:        insert.Amount,
		Status:        insert.Status,
		DueDate:       insert.DueDate,
		Description:   insert.Description,
		CreatedAt:     time.Now().UTC(),
	}
	s.invoices[invoice.ID] = invoice
	return &invoice
}

func (s *MemStore) UpdateInvoice(id, userID int, update UpdateInvoice) (*Invoice, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	invoice, ok := s.invoices[id]
	if !ok || invoice.UserID != userID {
		return nil, false
	}

	applyInt(&invoice.ClientID, update.ClientID)
	applyString(&invoice.InvoiceNumber, update.InvoiceNumber)
	if update.Amount != nil {
		invoice.Amount = *update.Amount
	}
	applyString(&invoice.Status, update.Status)
	if update.DueDate != nil {
		invoice.DueDate = *update.DueDate
	}
	applyOptional(&invoice.Description, update.Description)

	s.invoices[id] = invoice
	return &invoice, true
}

func (s *MemStore) DeleteInvoice(id, userID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	invoice, ok := s.invoices[id]
	if !ok || invoice.UserID != userID {
		return false
	}
	delete(s.invoices, id)
	return true
}

// Expenses

func (s *MemStore) ListExpenses(userID, clientID int) []Expense {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := []Expense{}
	for _, expense := range s.expenses {
		if expense.UserID == userID && (clientID == 0 || expense.ClientID == clientID) {
			result = append(result, expense)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

func (s *MemStore) GetExpense(id, userID int) (*Expense, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	expense, ok := s.expenses[id]
	if !ok || expense.UserID != userID {
		return nil, false
	}
	return &expense, true
}

func (s *MemStore) CreateExpense(userID int, insert InsertExpense) *Expense {
	s.mu.Lock()
	defer s.mu.Unlock()

	expense := Expense{
		ID:          s.allocateID(),
		UserID:      userID,
		ClientID:    insert.ClientID,
		Vendor:      insert.Vendor,
		Amount:      insert.Amount,
		Category:    insert.Category,
		Description: insert.Description,
		Status:      insert.Status,
		ReceiptURL:  insert.ReceiptURL,
		DueDate:     insert.DueDate,
		CreatedAt:   time.Now().UTC(),
	}
	s.expenses[expense.ID] = expense
	return &expense
}

func (s *MemStore) UpdateExpense(id, userID int, update UpdateExpense) (*Expense, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	expense, ok := s.expenses[id]
	if !ok || expense.UserID != userID {
		return nil, false
	}

	applyInt(&expense.ClientID, update.ClientID)
	applyString(&expense.Vendor, update.Vendor)
	if update.Amount != nil {
		expense.Amount = *update.Amount
	}
	applyString(&expense.Category, update.Category)
	applyOptional(&expense.Description, update.Description)
	applyString(&expense.Status, update.Status)
	applyOptional(&expense.ReceiptURL, update.ReceiptURL)
	if update.DueDate != nil {
		due := *update.DueDate
		expense.DueDate = &due
	}

	s.expenses[id] = expense
	return &expense, true
}

func (s *MemStore) DeleteExpense(id, userID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	expense, ok := s.expenses[id]
	if !ok || expense.UserID != userID {
		return false
	}
	delete(s.expenses, id)
	return true
}

// Employees

func (s *MemStore) ListEmployees(userID, clientID int) []Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := []Employee{}
	for _, employee := range s.employees {
		if employee.UserID == userID && (clientID == 0 || employee.ClientID == clientID) {
			result = append(result, employee)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

func (s *MemStore) GetEmployee(id, userID int) (*Employee, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	employee, ok := s.employees[id]
	if !ok || employee.UserID != userID {
		return nil, false
	}
	return &employee, true
}

func (s *MemStore) CreateEmployee(userID int, insert InsertEmployee) *Employee {
	s.mu.Lock()
	defer s.mu.Unlock()

	employee := Employee{
		ID:         s.allocateID(),
		UserID:     userID,
		ClientID:   insert.ClientID,
		Name:       insert.Name,
		Email:      insert.Email,
		Department: insert.Department,
		GrossPay:   insert.GrossPay,
		NetPay:     insert.NetPay,
		Status:     insert.Status,
		CreatedAt:  time.Now().UTC(),
	}
	s.employees[employee.ID] = employee
	return &employee
}

func (s *MemStore) UpdateEmployee(id, userID int, update UpdateEmployee) (*Employee, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	employee, ok := s.employees[id]
	if !ok || employee.UserID != userID {
		return nil, false
	}

	applyInt(&employee.ClientID, update.ClientID)
	applyString(&employee.Name, update.Name)
	applyString(&employee.Email, update.Email)
	applyOptional(&employee.Department, update.Department)
	if update.GrossPay != nil {
		employee.GrossPay = *update.GrossPay
	}
	if update.NetPay != nil {
		employee.NetPay = *update.NetPay
	}
	applyString(&employee.Status, update.Status)

	s.employees[id] = employee
	return &employee, true
}

func (s *MemStore) DeleteEmployee(id, userID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	employee, ok := s.employees[id]
	if !ok || employee.UserID != userID {
		return false
	}
	delete(s.employees, id)
	return true
}

// Reports

func (s *MemStore) ListReports(userID, clientID int) []Report {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := []Report{}
	for _, report := range s.reports {
		if report.UserID != userID {
			continue
		}
		if clientID != 0 && (report.ClientID == nil || *report.ClientID != clientID) {
			continue
		}
		report.Data = maps.Clone(report.Data)
		result = append(result, report)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

func (s *MemStore) GetReport(id, userID int) (*Report, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	report, ok := s.reports[id]
	if !ok || report.UserID != userID {
		return nil, false
	}
	report.Data = maps.Clone(report.Data)
	return &report, true
}

func (s *MemStore) CreateReport(userID int, insert InsertReport) *Report {
	s.mu.Lock()
	defer s.mu.Unlock()

	report := Report{
		ID:        s.allocateID(),
		UserID:    userID,
		ClientID:  insert.ClientID,
		Title:     insert.Title,
		Type:      insert.Type,
		Data:      maps.Clone(insert.Data),
		CreatedAt: time.Now().UTC(),
	}
	s.reports[report.ID] = report
	report.Data = maps.Clone(report.Data)
	return &report
}

func (s *MemStore) UpdateReport(id, userID int, update UpdateReport) (*Report, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	report, ok := s.reports[id]
	if !ok || report.UserID != userID {
		return nil, false
	}

	if update.ClientID != nil {
		clientID := *update.ClientID
		report.ClientID = &clientID
	}
	applyString(&report.Title, update.Title)
	applyString(&report.Type, update.Type)
	if update.Data != nil {
		// Whole-payload overwrite, never a deep merge.
		report.Data = maps.Clone(update.Data)
	}

	s.reports[id] = report
	report.Data = maps.Clone(report.Data)
	return &report, true
}

func (s *MemStore) DeleteReport(id, userID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	report, ok := s.reports[id]
	if !ok || report.UserID != userID {
		return false
	}
	delete(s.reports, id)
	return true
}

// Integrations

func (s *MemStore) ListIntegrations(userID, clientID int) []Integration {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := []Integration{}
	for _, integration := range s.integrations {
		if integration.UserID == userID && (clientID == 0 || integration.ClientID == clientID) {
			integration.Credentials = maps.Clone(integration.Credentials)
			result = append(result, integration)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

func (s *MemStore) GetIntegration(id, userID int) (*Integration, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	integration, ok := s.integrations[id]
	if !ok || integration.UserID != userID {
		return nil, false
	}
	integration.Credentials = maps.Clone(integration.Credentials)
	return &integration, true
}

func (s *MemStore) CreateIntegration(userID int, insert InsertIntegration) *Integration {
	s.mu.Lock()
	defer s.mu.Unlock()

	integration := Integration{
		ID:          s.allocateID(),
		UserID:      userID,
		ClientID:    insert.ClientID,
		Type:        insert.Type,
		Status:      insert.Status,
		Credentials: maps.Clone(insert.Credentials),
		CreatedAt:   time.Now().UTC(),
	}
	s.integrations[integration.ID] = integration
	integration.Credentials = maps.Clone(integration.Credentials)
	return &integration
}

func (s *MemStore) UpdateIntegration(id, userID int, update UpdateIntegration) (*Integration, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	integration, ok := s.integrations[id]
	if !ok || integration.UserID != userID {
		return nil, false
	}

	applyInt(&integration.ClientID, update.ClientID)
	applyString(&integration.Type, update.Type)
	applyString(&integration.Status, update.Status)
	if update.Credentials != nil {
		integration.Credentials = maps.Clone(update.Credentials)
	}

	s.integrations[id] = integration
	integration.Credentials = maps.Clone(integration.Credentials)
	return &integration, true
}

func (s *MemStore) DeleteIntegration(id, userID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	integration, ok := s.integrations[id]
	if !ok || integration.UserID != userID {
		return false
	}
	delete(s.integrations, id)
	return true
}

// Settings

func (s *MemStore) GetSettings(userID int) (*Settings, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, settings := range s.settings {
		if settings.UserID == userID {
			match := settings
			return &match, true
		}
	}
	return nil, false
}

// UpdateSettings merges over the existing row or lazily creates one
// from defaults. This is the only upsert in the store.
func (s *MemStore) UpdateSettings(userID int, update UpdateSettings) *Settings {
	s.mu.Lock()
	defer s.mu.Unlock()

	var settings Settings
	found := false
	for _, existing := range s.settings {
		if existing.UserID == userID {
			settings = existing
			found = true
			break
		}
	}
	if !found {
		settings = defaultSettings(userID)
		settings.ID = s.allocateID()
	}

	applyBool(&settings.AIAlerts, update.AIAlerts)
	applyBool(&settings.AutoCategorize, update.AutoCategorize)
	applyBool(&settings.SmartReminders, update.SmartReminders)
	applyBool(&settings.EmailNotifications, update.EmailNotifications)
	applyBool(&settings.WeeklyReports, update.WeeklyReports)
	applyString(&settings.Theme, update.Theme)
	applyString(&settings.DateFormat, update.DateFormat)
	applyString(&settings.Currency, update.Currency)
	applyString(&settings.SessionTimeout, update.SessionTimeout)

	s.settings[settings.ID] = settings
	return &settings
}

func defaultSettings(userID int) Settings {
	return Settings{
		UserID:             userID,
		AIAlerts:           true,
		AutoCategorize:     true,
		SmartReminders:     false,
		EmailNotifications: true,
		WeeklyReports:      true,
		Theme:              "light",
		DateFormat:         "MM/DD/YYYY",
		Currency:           "USD",
		SessionTimeout:     "1_hour",
	}
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func applyOptional(dst **string, src *string) {
	if src != nil {
		value := *src
		*dst = &value
	}
}

func applyInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

func applyBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}

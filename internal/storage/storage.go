package storage

// Store exposes owner-scoped CRUD over every entity collection. A zero
// clientID on list calls means "no client filter"; ids are assigned
// starting at 1 so zero is never a valid filter target.
//
// Absence is reported through the boolean return, never an error: a row
// owned by another user behaves exactly like a row that does not exist.
type Store interface {
	// Users
	GetUser(id int) (*User, bool)
	GetUserByUsername(username string) (*User, bool)
	GetUserByEmail(email string) (*User, bool)
	CreateUser(insert InsertUser) *User

	// Clients
	ListClients(userID int) []Client
	GetClient(id, userID int) (*Client, bool)
	CreateClient(userID int, insert InsertClient) *Client
	UpdateClient(id, userID int, update UpdateClient) (*Client, bool)
	DeleteClient(id, userID int) bool

	// Invoices
	ListInvoices(userID, clientID int) []Invoice
	GetInvoice(id, userID int) (*Invoice, bool)
	CreateInvoice(userID int, insert InsertInvoice) *Invoice
	UpdateInvoice(id, userID int, update UpdateInvoice) (*Invoice, bool)
	DeleteInvoice(id, userID int) bool

	// Expenses
	ListExpenses(userID, clientID int) []Expense
	GetExpense(id, userID int) (*Expense, bool)
	CreateExpense(userID int, insert InsertExpense) *Expense
	UpdateExpense(id, userID int, update UpdateExpense) (*Expense, bool)
	DeleteExpense(id, userID int) bool

	// Employees
	ListEmployees(userID, clientID int) []Employee
	GetEmployee(id, userID int) (*Employee, bool)
	CreateEmployee(userID int, insert InsertEmployee) *Employee
	UpdateEmployee(id, userID int, update UpdateEmployee) (*Employee, bool)
	DeleteEmployee(id, userID int) bool

	// Reports
	ListReports(userID, clientID int) []Report
	GetReport(id, userID int) (*Report, bool)
	CreateReport(userID int, insert InsertReport) *Report
	UpdateReport(id, userID int, update UpdateReport) (*Report, bool)
	DeleteReport(id, userID int) bool

	// Integrations
	ListIntegrations(userID, clientID int) []Integration
	GetIntegration(id, userID int) (*Integration, bool)
	CreateIntegration(userID int, insert InsertIntegration) *Integration
	UpdateIntegration(id, userID int, update UpdateIntegration) (*Integration, bool)
	DeleteIntegration(id, userID int) bool

	// Settings
	GetSettings(userID int) (*Settings, bool)
	UpdateSettings(userID int, update UpdateSettings) *Settings
}

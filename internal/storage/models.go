package storage

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice lifecycle statuses. The store accepts any string verbatim;
// these are the values the dashboard produces.
const (
	InvoiceStatusPending = "pending"
	InvoiceStatusPaid    = "paid"
	InvoiceStatusOverdue = "overdue"
)

const (
	ExpenseStatusPending  = "pending"
	ExpenseStatusApproved = "approved"
	ExpenseStatusFlagged  = "flagged"
)

const (
	EmployeeStatusActive   = "active"
	EmployeeStatusInactive = "inactive"
)

// User is the owning identity for every other entity.
type User struct {
	ID        int       `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"-"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Company   *string   `json:"company,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type InsertUser struct {
	Username string
	Password string
	Email    string
	Name     string
	Company  *string
}

// Client is a business the accountant manages books for.
type Client struct {
	ID           int       `json:"id"`
	UserID       int       `json:"userId"`
	Name         string    `json:"name"`
	BusinessType string    `json:"businessType"`
	TaxID        *string   `json:"taxId,omitempty"`
	Industry     *string   `json:"industry,omitempty"`
	Email        *string   `json:"email,omitempty"`
	Phone        *string   `json:"phone,omitempty"`
	Address      *string   `json:"address,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

type InsertClient struct {
	Name         string
	BusinessType string
	TaxID        *string
	Industry     *string
	Email        *string
	Phone        *string
	Address      *string
}

// UpdateClient carries a shallow partial merge; nil means field not supplied.
type UpdateClient struct {
	Name         *string
	BusinessType *string
	TaxID        *string
	Industry     *string
	Email        *string
	Phone        *string
	Address      *string
}

type Invoice struct {
	ID            int             `json:"id"`
	UserID        int             `json:"userId"`
	ClientID      int             `json:"clientId"`
	InvoiceNumber string          `json:"invoiceNumber"`
	Amount        decimal.Decimal `json:"amount"`
	Status        string          `json:"status"`
	DueDate       time.Time       `json:"dueDate"`
	Description   *string         `json:"description,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}

type InsertInvoice struct {
	ClientID      int
	InvoiceNumber string
	Amount        decimal.Decimal
	Status        string
	DueDate       time.Time
	Description   *string
}

type UpdateInvoice struct {
	ClientID      *int
	InvoiceNumber *string
	Amount        *decimal.Decimal
	Status        *string
	DueDate       *time.Time
	Description   *string
}

type Expense struct {
	ID          int             `json:"id"`
	UserID      int             `json:"userId"`
	ClientID    int             `json:"clientId"`
	Vendor      string          `json:"vendor"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Description *string         `json:"description,omitempty"`
	Status      string          `json:"status"`
	ReceiptURL  *string         `json:"receiptUrl,omitempty"`
	DueDate     *time.Time      `json:"dueDate,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

type InsertExpense struct {
	ClientID    int
	Vendor      string
	Amount      decimal.Decimal
	Category    string
	Description *string
	Status      string
	ReceiptURL  *string
	DueDate     *time.Time
}

type UpdateExpense struct {
	ClientID    *int
	Vendor      *string
	Amount      *decimal.Decimal
	Category    *string
	Description *string
	Status      *string
	ReceiptURL  *string
	DueDate     *time.Time
}

type Employee struct {
	ID         int             `json:"id"`
	UserID     int             `json:"userId"`
	ClientID   int             `json:"clientId"`
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	Department *string         `json:"department,omitempty"`
	GrossPay   decimal.Decimal `json:"grossPay"`
	NetPay     decimal.Decimal `json:"netPay"`
	Status     string          `json:"status"`
	CreatedAt  time.Time       `json:"createdAt"`
}

type InsertEmployee struct {
	ClientID   int
	Name       string
	Email      string
	Department *string
	GrossPay   decimal.Decimal
	NetPay     decimal.Decimal
	Status     string
}

type UpdateEmployee struct {
	ClientID   *int
	Name       *string
	Email      *string
	Department *string
	GrossPay   *decimal.Decimal
	NetPay     *decimal.Decimal
	Status     *string
}

// Report data payloads are opaque to the store and merged whole on update.
type Report struct {
	ID        int            `json:"id"`
	UserID    int            `json:"userId"`
	ClientID  *int           `json:"clientId,omitempty"`
	Title     string         `json:"title"`
	Type      string         `json:"type"`
	Data      map[string]any `json:"data"`
	CreatedAt time.Time      `json:"createdAt"`
}

type InsertReport struct {
	ClientID *int
	Title    string
	Type     string
	Data     map[string]any
}

type UpdateReport struct {
	ClientID *int
	Title    *string
	Type     *string
	Data     map[string]any
}

type Integration struct {
	ID          int            `json:"id"`
	UserID      int            `json:"userId"`
	ClientID    int            `json:"clientId"`
	Type        string         `json:"type"`
	Status      string         `json:"status"`
	Credentials map[string]any `json:"credentials,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
}

type InsertIntegration struct {
	ClientID    int
	Type        string
	Status      string
	Credentials map[string]any
}

type UpdateIntegration struct {
	ClientID    *int
	Type        *string
	Status      *string
	Credentials map[string]any
}

// Settings holds the one-per-user preference row.
type Settings struct {
	ID                 int    `json:"id"`
	UserID             int    `json:"userId"`
	AIAlerts           bool   `json:"aiAlerts"`
	AutoCategorize     bool   `json:"autoCategorize"`
	SmartReminders     bool   `json:"smartReminders"`
	EmailNotifications bool   `json:"emailNotifications"`
	WeeklyReports      bool   `json:"weeklyReports"`
	Theme              string `json:"theme"`
	DateFormat         string `json:"dateFormat"`
	Currency           string `json:"currency"`
	SessionTimeout     string `json:"sessionTimeout"`
}

type UpdateSettings struct {
	AIAlerts           *bool
	AutoCategorize     *bool
	SmartReminders     *bool
	EmailNotifications *bool
	WeeklyReports      *bool
	Theme              *string
	DateFormat         *string
	Currency           *string
	SessionTimeout     *string
}

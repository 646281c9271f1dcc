package models

import "time"

type Product struct {
	ID           int       `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Description  string    `db:"description" json:"description"`
	Sku          string    `db:"sku" json:"sku"`
	Category     string    `db:"category" json:"category"`
	DailyRate    float64   `db:"daily_rate" json:"daily_rate"`
	WeeklyRate   float64   `db:"weekly_rate" json:"weekly_rate"`
	MonthlyRate  float64   `db:"monthly_rate" json:"monthly_rate"`
	Quantity     float64   `db:"quantity" json:"quantity"`
	Brand        string    `db:"brand" json:"brand"`
	Model        string    `db:"model" json:"model"`
	SerialNumber string    `db:"serial_number" json:"serial_number"`
	Condition    string    `db:"condition" json:"condition"`
	Notes        string    `db:"notes" json:"notes"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

type Client struct {
	ID        int       `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	Phone     string    `db:"phone" json:"phone"`
	CpfCnpj   string    `db:"cpf_cnpj" json:"cpf_cnpj"`
	Address   string    `db:"address" json:"address"`
	City      string    `db:"city" json:"city"`
	State     string    `db:"state" json:"state"`
	ZipCode   string    `db:"zip_code" json:"zip_code"`
	Notes     string    `db:"notes" json:"notes"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

type Order struct {
	ID          int       `db:"id" json:"id"`
	ClientName  string    `db:"client_name" json:"client_name"`
	ProductName string    `db:"product_name" json:"product_name"`
	StartDate   string    `db:"start_date" json:"start_date"`
	EndDate     string    `db:"end_date" json:"end_date"`
	TotalValue  float64   `db:"total_value" json:"total_value"`
	Status      string    `db:"status" json:"status"`
	Notes       string    `db:"notes" json:"notes"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

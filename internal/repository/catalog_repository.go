package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"

	"locacao-web/internal/models"
	"locacao-web/internal/schema"
)

// CatalogRepository is the persistence collaborator the batch importer
// calls once per row. Records are created or updated in place, keyed
// by the natural identifier of each entity kind.
type CatalogRepository struct {
	db *sqlx.DB
}

func NewCatalogRepository(db *sqlx.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// PersistRecord dispatches one mapped record to the right upsert
func (r *CatalogRepository) PersistRecord(ctx context.Context, kind schema.EntityKind, record map[string]interface{}) error {
	switch kind {
	case schema.EntityProducts:
		return r.upsertProduct(ctx, record)
	case schema.EntityClients:
		return r.upsertClient(ctx, record)
	case schema.EntityOrders:
		return r.createOrder(ctx, record)
	}
	return fmt.Errorf("unknown entity kind: %q", kind)
}

func (r *CatalogRepository) upsertProduct(ctx context.Context, record map[string]interface{}) error {
	p := models.Product{
		Name:         getString(record, "name"),
		Description:  getString(record, "description"),
		Sku:          getString(record, "sku"),
		Category:     getString(record, "category"),
		DailyRate:    getFloat(record, "dailyRate"),
		WeeklyRate:   getFloat(record, "weeklyRate"),
		MonthlyRate:  getFloat(record, "monthlyRate"),
		Quantity:     getFloat(record, "quantity"),
		Brand:        getString(record, "brand"),
		Model:        getString(record, "model"),
		SerialNumber: getString(record, "serialNumber"),
		Condition:    getString(record, "condition"),
		Notes:        getString(record, "notes"),
	}
	if p.Name == "" {
		return fmt.Errorf("nome do produto ausente")
	}

	query := `INSERT INTO products (name, description, sku, category, daily_rate, weekly_rate,
	          monthly_rate, quantity, brand, model, serial_number, ` + "`condition`" + `, notes)
	          VALUES (:name, :description, :sku, :category, :daily_rate, :weekly_rate,
	          :monthly_rate, :quantity, :brand, :model, :serial_number, :condition, :notes)
	          ON DUPLICATE KEY UPDATE description = VALUES(description), sku = VALUES(sku),
	          category = VALUES(category), daily_rate = VALUES(daily_rate),
	          weekly_rate = VALUES(weekly_rate), monthly_rate = VALUES(monthly_rate),
	          quantity = VALUES(quantity), brand = VALUES(brand), model = VALUES(model),
	          serial_number = VALUES(serial_number), ` + "`condition`" + ` = VALUES(` + "`condition`" + `),
	          notes = VALUES(notes)`
	_, err := r.db.NamedExecContext(ctx, query, p)
	return err
}

func (r *CatalogRepository) upsertClient(ctx context.Context, record map[string]interface{}) error {
	c := models.Client{
		Name:    getString(record, "name"),
		Email:   getString(record, "email"),
		Phone:   getString(record, "phone"),
		CpfCnpj: getString(record, "cpfCnpj"),
		Address: getString(record, "address"),
		City:    getString(record, "city"),
		State:   getString(record, "state"),
		ZipCode: getString(record, "zipCode"),
		Notes:   getString(record, "notes"),
	}
	if c.Name == "" {
		return fmt.Errorf("nome do cliente ausente")
	}

	query := `INSERT INTO clients (name, email, phone, cpf_cnpj, address, city, state, zip_code, notes)
	          VALUES (:name, :email, :phone, :cpf_cnpj, :address, :city, :state, :zip_code, :notes)
	          ON DUPLICATE KEY UPDATE email = VALUES(email), phone = VALUES(phone),
	          address = VALUES(address), city = VALUES(city), state = VALUES(state),
	          zip_code = VALUES(zip_code), notes = VALUES(notes)`
	_, err := r.db.NamedExecContext(ctx, query, c)
	return err
}

func (r *CatalogRepository) createOrder(ctx context.Context, record map[string]interface{}) error {
	o := models.Order{
		ClientName:  getString(record, "clientName"),
		ProductName: getString(record, "productName"),
		StartDate:   getString(record, "startDate"),
		EndDate:     getString(record, "endDate"),
		TotalValue:  getFloat(record, "totalValue"),
		Status:      getString(record, "status"),
		Notes:       getString(record, "notes"),
	}
	if o.ClientName == "" || o.ProductName == "" {
		return fmt.Errorf("cliente ou produto ausente")
	}

	query := `INSERT INTO orders (client_name, product_name, start_date, end_date, total_value, status, notes)
	          VALUES (:client_name, :product_name, :start_date, :end_date, :total_value, :status, :notes)`
	_, err := r.db.NamedExecContext(ctx, query, o)
	return err
}

func getString(record map[string]interface{}, key string) string {
	if v, ok := record[key].(string); ok {
		return v
	}
	return ""
}

func getFloat(record map[string]interface{}, key string) float64 {
	switch v := record[key].(type) {
	case float64:
		return v
	case string:
		// fields outside the coercer's numeric set arrive as text
		f, err := strconv.ParseFloat(strings.ReplaceAll(v, ",", "."), 64)
		if err != nil {
			return 0
		}
		return f
	}
	return 0
}

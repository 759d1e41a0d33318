package storagetesting

import (
	"database/sql"
	"os"
	"testing"

	"github.com/MichalMitros/shelf-analytics/internal/platform/storage/migrations"
	"github.com/rs/zerolog"

	pgmodels "github.com/MichalMitros/shelf-analytics/internal/platform/storage/gen/postgres/public/model"
	"github.com/MichalMitros/shelf-analytics/internal/platform/storage/gen/postgres/public/table"
	pg "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"

	_ "github.com/lib/pq"
)

// Open opens connection to DB and applies migrations.
func Open(t *testing.T) *sql.DB {
	t.Helper()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Fatal("please provide database URL via DATABASE_URL environment variable")
	}

	logger := zerolog.Nop()
	if err := migrations.Up(dbURL, &logger); err != nil {
		t.Fatalf("can't migrate %q: %s", dbURL, err)
	}

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		t.Fatalf("can't open connection to %q: %s", dbURL, err)
	}

	return db
}

// BeginTx begins DB transaction. Returns function to roll it back.
func BeginTx(t *testing.T, db *sql.DB) (*sql.Tx, func()) {
	t.Helper()

	tx, err := db.Begin()
	if err != nil {
		t.Fatal("begin transaction", err)
	}

	rollback := func() {
		if err := tx.Rollback(); err != nil {
			t.Fatal("can't rollback transaction", err)
		}
	}

	return tx, rollback
}

// InsertBrands is a helper test function to insert brands.
func InsertBrands(t *testing.T, exc qrm.Executable, brands ...pgmodels.Brand) {
	t.Helper()

	if len(brands) == 0 {
		return
	}

	_, err := table.Brand.INSERT(table.Brand.ID, table.Brand.Name, table.Brand.URL).MODELS(brands).Exec(exc)
	if err != nil {
		t.Fatal("can't insert brands", err)
	}
}

// InsertBrandCategories is a helper test function to insert brand categories.
func InsertBrandCategories(t *testing.T, exc qrm.Executable, categories ...pgmodels.BrandCategory) {
	t.Helper()

	if len(categories) == 0 {
		return
	}

	_, err := table.BrandCategory.INSERT(table.BrandCategory.AllColumns).MODELS(categories).Exec(exc)
	if err != nil {
		t.Fatal("can't insert brand categories", err)
	}
}

// InsertBrandProducts is a helper test function to insert brand products.
func InsertBrandProducts(t *testing.T, exc qrm.Executable, products ...pgmodels.BrandProduct) {
	t.Helper()

	if len(products) == 0 {
		return
	}

	columns := table.BrandProduct.AllColumns.Except(table.BrandProduct.CreatedAt, table.BrandProduct.UpdatedAt)
	_, err := table.BrandProduct.INSERT(columns).MODELS(products).Exec(exc)
	if err != nil {
		t.Fatal("can't insert brand products", err)
	}
}

// InsertRetailers is a helper test function to insert retailers mapped to brand.
func InsertRetailers(t *testing.T, exc qrm.Executable, brand pgmodels.Brand, retailers ...pgmodels.Retailer) {
	t.Helper()

	if len(retailers) == 0 {
		return
	}

	_, err := table.Retailer.INSERT(table.Retailer.AllColumns).MODELS(retailers).Exec(exc)
	if err != nil {
		t.Fatal("can't insert retailers", err)
	}

	mappings := make([]pgmodels.RetailerToBrandMapping, 0, len(retailers))
	for ix := range retailers {
		mappings = append(mappings, pgmodels.RetailerToBrandMapping{RetailerID: retailers[ix].ID, BrandID: brand.ID})
	}

	_, err = table.RetailerToBrandMapping.INSERT(table.RetailerToBrandMapping.AllColumns).MODELS(mappings).Exec(exc)
	if err != nil {
		t.Fatal("can't insert retailer mappings", err)
	}
}

// InsertRetailerProducts is a helper test function to insert retailer products.
func InsertRetailerProducts(t *testing.T, exc qrm.Executable, products ...pgmodels.RetailerProduct) {
	t.Helper()

	if len(products) == 0 {
		return
	}

	columns := table.RetailerProduct.AllColumns.Except(table.RetailerProduct.CreatedAt, table.RetailerProduct.UpdatedAt)
	_, err := table.RetailerProduct.INSERT(columns).MODELS(products).Exec(exc)
	if err != nil {
		t.Fatal("can't insert retailer products", err)
	}
}

// InsertProductMatchings is a helper test function to insert product matchings.
func InsertProductMatchings(t *testing.T, exc qrm.Executable, matchings ...pgmodels.ProductMatching) {
	t.Helper()

	if len(matchings) == 0 {
		return
	}

	columns := table.ProductMatching.AllColumns.Except(table.ProductMatching.CreatedAt, table.ProductMatching.UpdatedAt)
	_, err := table.ProductMatching.INSERT(columns).MODELS(matchings).Exec(exc)
	if err != nil {
		t.Fatal("can't insert product matchings", err)
	}
}

// InsertExchangeRates is a helper test function to insert currency exchange rates.
func InsertExchangeRates(t *testing.T, exc qrm.Executable, rates ...pgmodels.CurrencyExchangeRate) {
	t.Helper()

	if len(rates) == 0 {
		return
	}

	columns := table.CurrencyExchangeRate.AllColumns.Except(table.CurrencyExchangeRate.UpdatedAt)
	_, err := table.CurrencyExchangeRate.INSERT(columns).MODELS(rates).Exec(exc)
	if err != nil {
		t.Fatal("can't insert exchange rates", err)
	}
}

// GetProductMatchings is a helper test function to get matchings of brand product ordered by retailer product id.
func GetProductMatchings(t *testing.T, queryable qrm.Queryable, brandProduct pgmodels.BrandProduct) []pgmodels.ProductMatching {
	t.Helper()

	matchings := []pgmodels.ProductMatching{}
	err := table.ProductMatching.SELECT(table.ProductMatching.AllColumns).
		WHERE(table.ProductMatching.BrandProductID.EQ(pg.UUID(brandProduct.ID))).
		ORDER_BY(table.ProductMatching.RetailerProductID.ASC()).
		Query(queryable, &matchings)
	if err != nil {
		t.Fatal("can't get product matchings", err)
	}

	return matchings
}

// GetManualURLMatchings is a helper test function to get all url matchings.
func GetManualURLMatchings(t *testing.T, queryable qrm.Queryable) []pgmodels.ManualURLMatching {
	t.Helper()

	matchings := []pgmodels.ManualURLMatching{}
	err := table.ManualURLMatching.SELECT(table.ManualURLMatching.AllColumns).
		WHERE(table.ManualURLMatching.ID.IS_NOT_NULL()).
		Query(queryable, &matchings)
	if err != nil {
		t.Fatal("can't get url matchings", err)
	}

	return matchings
}

// CleanupData is a helper test function to delete all data, dependent rows are removed by cascades.
func CleanupData(t *testing.T, exc qrm.Executable) {
	t.Helper()

	_, err := table.CurrencyExchangeRate.DELETE().WHERE(table.CurrencyExchangeRate.FromCurrency.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete exchange rates data", err)
	}

	_, err = table.Retailer.DELETE().WHERE(table.Retailer.ID.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete retailers data", err)
	}

	_, err = table.Brand.DELETE().WHERE(table.Brand.ID.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete brands data", err)
	}
}

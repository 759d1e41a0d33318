package modelstesting

import (
	"math/rand"
	"time"

	"github.com/MichalMitros/shelf-analytics/internal/platform/models"
	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

// FakeRetailer returns models.Retailer with fake data.
func FakeRetailer(ops ...func(r *models.Retailer)) models.Retailer {
	retailer := models.Retailer{
		ID:      uuid.New(),
		Name:    faker.Word(),
		URL:     lo.ToPtr(faker.URL()),
		Country: faker.Word(),
	}

	for _, op := range ops {
		op(&retailer)
	}

	return retailer
}

// FakeBrandProduct returns active models.BrandProduct with fake data.
func FakeBrandProduct(ops ...func(p *models.BrandProduct)) models.BrandProduct {
	product := models.BrandProduct{
		ID:          uuid.New(),
		BrandID:     uuid.New(),
		Name:        faker.Word(),
		Description: lo.ToPtr(faker.Sentence()),
		SKU:         lo.ToPtr(faker.Word()),
		GTIN:        lo.ToPtr(faker.Word()),
		URL:         lo.ToPtr(faker.URL()),
		Active:      true,
		CreatedAt:   time.Now().UTC().Truncate(time.Second),
	}

	for _, op := range ops {
		op(&product)
	}

	return product
}

// FakeRetailerProduct returns models.RetailerProduct with fake data and fake retailer.
func FakeRetailerProduct(ops ...func(p *models.RetailerProduct)) models.RetailerProduct {
	product := models.RetailerProduct{
		ID:              uuid.New(),
		Retailer:        FakeRetailer(),
		Name:            faker.Word(),
		Description:     lo.ToPtr(faker.Sentence()),
		SKU:             lo.ToPtr(faker.Word()),
		GTIN:            lo.ToPtr(faker.Word()),
		URL:             lo.ToPtr(faker.URL()),
		Price:           lo.ToPtr(float64(rand.Intn(10000)) / 100),
		Currency:        lo.ToPtr("EUR"),
		IsDiscounted:    rand.Intn(2) == 1,
		Availability:    lo.ToPtr("in_stock"),
		PopularityIndex: lo.ToPtr(rand.Int31n(100)),
		ReviewAverage:   lo.ToPtr(float64(rand.Intn(50)) / 10),
		ReviewCount:     lo.ToPtr(rand.Int31n(1000)),
		FetchedAt:       time.Now().UTC().Truncate(time.Second),
	}

	for _, op := range ops {
		op(&product)
	}

	return product
}

// FakeProductMatching returns models.ProductMatching with fake scores and auto low confidence certainty.
func FakeProductMatching(ops ...func(m *models.ProductMatching)) models.ProductMatching {
	matching := models.ProductMatching{
		ID:                uuid.New(),
		BrandProductID:    uuid.New(),
		RetailerProductID: uuid.New(),
		Type:              lo.ToPtr("image"),
		ImageScore:        lo.ToPtr(rand.Float64()),
		TextScore:         lo.ToPtr(rand.Float64()),
		Certainty:         models.CertaintyAutoLowConfidence,
	}

	for _, op := range ops {
		op(&matching)
	}

	return matching
}

// FakeProductGroup returns models.ProductGroup with fake data.
func FakeProductGroup(ops ...func(g *models.ProductGroup)) models.ProductGroup {
	group := models.ProductGroup{
		ID:            uuid.New(),
		BrandID:       uuid.New(),
		UserID:        faker.Username(),
		Name:          faker.Word(),
		ProductsCount: rand.Int63n(100),
		CreatedAt:     time.Now().UTC().Truncate(time.Second),
	}

	for _, op := range ops {
		op(&group)
	}

	return group
}

// FakeRetailerOffer returns matched models.RetailerOffer with fake data.
func FakeRetailerOffer(ops ...func(o *models.RetailerOffer)) models.RetailerOffer {
	offer := models.RetailerOffer{
		ID:                    uuid.New(),
		URL:                   lo.ToPtr(faker.URL()),
		Name:                  faker.Word(),
		GTIN:                  lo.ToPtr(faker.Word()),
		SKU:                   lo.ToPtr(faker.Word()),
		RetailerID:            uuid.New(),
		RetailerName:          faker.Word(),
		Country:               faker.Word(),
		Price:                 lo.ToPtr(float64(rand.Intn(10000)) / 100),
		Currency:              lo.ToPtr("EUR"),
		InStock:               true,
		AvailableAtRetailer:   true,
		MatchedBrandProductID: uuid.New(),
		Certainty:             models.CertaintyAutoHighConfidence,
		FetchedAt:             time.Now().UTC().Truncate(time.Second),
	}

	for _, op := range ops {
		op(&offer)
	}

	return offer
}

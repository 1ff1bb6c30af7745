package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sthemsandsaves/booking-backend/internal/domain"
	"github.com/sthemsandsaves/booking-backend/internal/domain/catalog"
)

func mustService(t *testing.T, name string, priceCents int64, category catalog.ServiceCategory) *catalog.Service {
	t.Helper()
	svc, err := catalog.NewService(name, "", priceCents, category, "")
	require.NoError(t, err)
	return svc
}

func mustPackage(t *testing.T, name string, priceCents int64) *catalog.Package {
	t.Helper()
	pkg, err := catalog.NewPackage(name, "", 3, priceCents, nil, nil, "")
	require.NoError(t, err)
	return pkg
}

func datePtr(t *testing.T, value string) *time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return &parsed
}

func TestCalculate_PackageMode_MultipliesByGuests(t *testing.T) {
	strategy := NewStandardPricingStrategy()

	total, err := strategy.Calculate(PricingParams{
		Mode:    ModePackage,
		Guests:  4,
		Package: mustPackage(t, "Weekend Escape", 350000),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1400000), total)
}

func TestCalculate_PackageMode_MissingPackage(t *testing.T) {
	strategy := NewStandardPricingStrategy()

	_, err := strategy.Calculate(PricingParams{
		Mode:   ModePackage,
		Guests: 2,
	})

	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestCalculate_FlexibleMode_SumsServicesAndLodgingNights(t *testing.T) {
	strategy := NewStandardPricingStrategy()

	// (200.00 attraction + 500.00/night lodging x 3 nights) x 2 guests = 3400.00
	total, err := strategy.Calculate(PricingParams{
		Mode:   ModeFlexible,
		Guests: 2,
		Services: []*catalog.Service{
			mustService(t, "Game Drive", 20000, catalog.CategoryAttraction),
			mustService(t, "Standard Room", 50000, catalog.CategoryLodging),
		},
		CheckIn:  datePtr(t, "2026-09-10"),
		CheckOut: datePtr(t, "2026-09-13"),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(340000), total)
}

func TestCalculate_FlexibleMode_OnlyFirstLodgingPricesPerNight(t *testing.T) {
	strategy := NewStandardPricingStrategy()

	total, err := strategy.Calculate(PricingParams{
		Mode:   ModeFlexible,
		Guests: 1,
		Services: []*catalog.Service{
			mustService(t, "Standard Room", 50000, catalog.CategoryLodging),
			mustService(t, "Deluxe Room", 90000, catalog.CategoryLodging),
		},
		CheckIn:  datePtr(t, "2026-09-10"),
		CheckOut: datePtr(t, "2026-09-12"),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(100000), total)
}

func TestCalculate_FlexibleMode_NoDatesSkipsLodging(t *testing.T) {
	strategy := NewStandardPricingStrategy()

	total, err := strategy.Calculate(PricingParams{
		Mode:   ModeFlexible,
		Guests: 2,
		Services: []*catalog.Service{
			mustService(t, "Airport Shuttle", 15000, catalog.CategoryTransport),
			mustService(t, "Standard Room", 50000, catalog.CategoryLodging),
		},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(30000), total)
}

func TestCalculate_FlexibleMode_SameDayIsZeroNights(t *testing.T) {
	strategy := NewStandardPricingStrategy()

	total, err := strategy.Calculate(PricingParams{
		Mode:   ModeFlexible,
		Guests: 1,
		Services: []*catalog.Service{
			mustService(t, "Standard Room", 50000, catalog.CategoryLodging),
			mustService(t, "Day Spa", 25000, catalog.CategoryAttraction),
		},
		CheckIn:  datePtr(t, "2026-09-10"),
		CheckOut: datePtr(t, "2026-09-10"),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(25000), total)
}

func TestCalculate_FlexibleMode_EmptyServices(t *testing.T) {
	strategy := NewStandardPricingStrategy()

	_, err := strategy.Calculate(PricingParams{
		Mode:   ModeFlexible,
		Guests: 1,
	})

	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestCalculate_GuestsBelowOne(t *testing.T) {
	strategy := NewStandardPricingStrategy()

	for _, guests := range []int{0, -3} {
		_, err := strategy.Calculate(PricingParams{
			Mode:    ModePackage,
			Guests:  guests,
			Package: mustPackage(t, "Weekend Escape", 350000),
		})

		var validationErr *domain.ValidationError
		require.ErrorAs(t, err, &validationErr, "guests=%d", guests)
	}
}

func TestCalculate_CheckOutBeforeCheckIn(t *testing.T) {
	strategy := NewStandardPricingStrategy()

	_, err := strategy.Calculate(PricingParams{
		Mode:     ModeFlexible,
		Guests:   2,
		Services: []*catalog.Service{mustService(t, "Game Drive", 20000, catalog.CategoryAttraction)},
		CheckIn:  datePtr(t, "2026-09-13"),
		CheckOut: datePtr(t, "2026-09-10"),
	})

	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestNightsBetween(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		want     int
	}{
		{"three nights", "2026-09-10", "2026-09-13", 3},
		{"one night", "2026-09-10", "2026-09-11", 1},
		{"same day", "2026-09-10", "2026-09-10", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NightsBetween(*datePtr(t, tt.checkIn), *datePtr(t, tt.checkOut))
			assert.Equal(t, tt.want, got)
		})
	}
}

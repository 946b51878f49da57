package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripdiary-service/pkg/logger"
)

func newTestExtractor() *VenueExtractor {
	return NewVenueExtractor(logger.NewNopLogger())
}

func TestVenueParser_NumberedListWithLabeledFields(t *testing.T) {
	text := `1. **Le Comptoir** - 9 Carrefour de l'Odeon, Paris
   - Cuisine: French bistro
   - Price: $$
   - Hours: 12:00-23:00
2. **Breizh Cafe** - 109 Rue Vieille du Temple, Paris
   - Cuisine: Creperie`

	venues := newTestExtractor().Parse(text)
	require.Len(t, venues, 2)

	assert.Equal(t, "Le Comptoir", venues[0].Name)
	assert.Equal(t, "9 Carrefour de l'Odeon, Paris", venues[0].Address)
	assert.Equal(t, "French bistro", venues[0].Cuisine)
	assert.Equal(t, "$$", venues[0].Price)
	assert.Equal(t, "12:00-23:00", venues[0].Hours)

	assert.Equal(t, "Breizh Cafe", venues[1].Name)
	assert.Equal(t, "109 Rue Vieille du Temple, Paris", venues[1].Address)
	assert.Equal(t, "Creperie", venues[1].Cuisine)
}

func TestVenueParser_BoldedFieldLabels(t *testing.T) {
	// Labels wrapped in bold must not be mistaken for venue names
	text := `**Katz's Deli**
**Address:** 205 E Houston Street, New York, NY 10002
**Price:** $$
**Why recommended:** A pastrami institution on the Lower East Side`

	venues := newTestExtractor().Parse(text)
	require.Len(t, venues, 1)

	assert.Equal(t, "Katz's Deli", venues[0].Name)
	assert.Equal(t, "205 E Houston Street, New York, NY 10002", venues[0].Address)
	assert.Equal(t, "$$", venues[0].Price)
	assert.Equal(t, "A pastrami institution on the Lower East Side", venues[0].Description)
}

func TestVenueParser_FirstOccurrenceWins(t *testing.T) {
	text := `**Noma**
Address: Refshalevej 96, Copenhagen
Address: some other address entirely
Price: $$$$
Cost: cheap actually`

	venues := newTestExtractor().Parse(text)
	require.Len(t, venues, 1)

	assert.Equal(t, "Refshalevej 96, Copenhagen", venues[0].Address)
	assert.Equal(t, "$$$$", venues[0].Price)
}

func TestVenueParser_InlineTrailingSplitsAddressAndDescription(t *testing.T) {
	text := `- **Tsukiji Outer Market** - 4 Chome Tsukiji, Tokyo, famous for its fresh seafood stalls`

	venues := newTestExtractor().Parse(text)
	require.Len(t, venues, 1)

	assert.Equal(t, "Tsukiji Outer Market", venues[0].Name)
	assert.Equal(t, "4 Chome Tsukiji, Tokyo", venues[0].Address)
	assert.Equal(t, "famous for its fresh seafood stalls", venues[0].Description)
}

func TestVenueParser_InlineTrailingWithoutAddressBecomesDescription(t *testing.T) {
	text := `**The Alchemist** - an inventive cocktail experience worth booking ahead`

	venues := newTestExtractor().Parse(text)
	require.Len(t, venues, 1)

	assert.Empty(t, venues[0].Address)
	assert.Equal(t, "an inventive cocktail experience worth booking ahead", venues[0].Description)
}

func TestVenueParser_UnlabeledLinesAccumulateDescription(t *testing.T) {
	text := `**Sagrada Familia**
Gaudi's unfinished basilica and Barcelona's defining landmark.
Book tickets online well in advance.
ok`

	venues := newTestExtractor().Parse(text)
	require.Len(t, venues, 1)

	// The trailing short fragment is discarded as noise
	assert.Equal(t,
		"Gaudi's unfinished basilica and Barcelona's defining landmark. Book tickets online well in advance.",
		venues[0].Description)
}

func TestVenueParser_CarriageReturnsNormalized(t *testing.T) {
	text := "**Borough Market**\r\nAddress: 8 Southwark Street, London\r\n"

	venues := newTestExtractor().Parse(text)
	require.Len(t, venues, 1)
	assert.Equal(t, "8 Southwark Street, London", venues[0].Address)
}

func TestVenueParser_Deterministic(t *testing.T) {
	text := `1. **Le Comptoir** - 9 Carrefour de l'Odeon, Paris
   - Price: $$
2. **Breizh Cafe**
   Address: 109 Rue Vieille du Temple, Paris`

	extractor := newTestExtractor()
	first := extractor.Parse(text)
	second := extractor.Parse(text)
	assert.Equal(t, first, second)
}

func TestVenueExtractor_LooseFallback(t *testing.T) {
	// No line opens with a bold span, so the strict parser finds nothing
	text := `Here are some suggestions for your visit.
The **Louvre** is unmissable if you have the time.
Rue de Rivoli, 75001 Paris
Plan at least half a day for the main wings.
A visit to the **Musee d'Orsay** pairs well with it.`

	venues := newTestExtractor().Parse(text)
	require.Len(t, venues, 2)

	assert.Equal(t, "Louvre", venues[0].Name)
	assert.Equal(t, "Rue de Rivoli, 75001 Paris", venues[0].Address)
	assert.Equal(t, "Plan at least half a day for the main wings.", venues[0].Description)

	assert.Equal(t, "Musee d'Orsay", venues[1].Name)
	assert.Empty(t, venues[1].Address)
}

func TestVenueExtractor_LooseStopsAtNextBoldSpan(t *testing.T) {
	text := `A tip: **First Place** is busy in the evening.
A tip: **Second Place** is quieter.
10 Downing Street, London`

	venues := newTestExtractor().Parse(text)
	require.Len(t, venues, 2)

	// The address line belongs to the second venue only
	assert.Empty(t, venues[0].Address)
	assert.Equal(t, "10 Downing Street, London", venues[1].Address)
}

func TestVenueExtractor_EmptyInput(t *testing.T) {
	extractor := newTestExtractor()

	assert.Nil(t, extractor.Parse(""))
	assert.Nil(t, extractor.Parse("   \n\t  "))
	assert.Empty(t, extractor.Parse("no venues mentioned here at all, just plain prose"))
}

func TestLooksLikeAddress(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"street keyword", "Baker Street", true},
		{"leading number", "221 Baker St", true},
		{"postal code", "Copenhagen 1432", true},
		{"us state abbreviation", "Brooklyn NY", true},
		{"known city", "somewhere in Tokyo", true},
		{"plain prose", "a lovely evening out", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, looksLikeAddress(tt.input))
		})
	}
}

func TestSplitAddressPrefix(t *testing.T) {
	address, description := splitAddressPrefix("9 Carrefour de l'Odeon, Paris, a neighborhood classic")
	assert.Equal(t, "9 Carrefour de l'Odeon, Paris", address)
	assert.Equal(t, "a neighborhood classic", description)

	address, description = splitAddressPrefix("charming and quiet, great for groups")
	assert.Empty(t, address)
	assert.Empty(t, description)
}

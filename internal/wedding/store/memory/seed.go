package memory

import (
	"context"

	"wedify/internal/theme"
	"wedify/internal/wedding/models"
)

// Seed loads demo weddings so a fresh process serves real-looking pages
// without a database. Only used when no DATABASE_URL is configured.
func Seed(ctx context.Context, s *Store) error {
	demos := []models.Wedding{
		{
			Slug:         "janith-and-sanduni",
			BrideName:    "Sanduni Perera",
			GroomName:    "Janith Fernando",
			Date:         "2026-12-15",
			Time:         "6:00 PM",
			Venue:        "Grand Ballroom, Hotel Paradise",
			VenueAddress: "123 Paradise Street, Colombo 07, Sri Lanka",
			Message:      "We joyfully request the pleasure of your company at our wedding celebration",
			TemplateID:   "elegant-rose",
		},
		{
			Slug:       "jane-and-john",
			BrideName:  "Jane Smith",
			GroomName:  "John Doe",
			Date:       "2026-08-21",
			Time:       "4:30 PM",
			Venue:      "Seaside Pavilion",
			Message:    "Join us on the beach as we say 'I do'",
			TemplateID: "tropical-paradise",
			Gallery: []string{
				"https://images.unsplash.com/photo-1519741497674-611481863552?w=800&h=600&fit=crop",
				"https://images.unsplash.com/photo-1465495976277-4387d4b0b4c6?w=800&h=600&fit=crop",
			},
			CustomColors: &theme.Override{Primary: "#e91e63"},
		},
	}

	for _, w := range demos {
		if err := s.Put(ctx, w); err != nil {
			return err
		}
	}
	return nil
}

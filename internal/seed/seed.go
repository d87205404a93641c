package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/shariarmdimtiaz/college-booking-server/internal/app/models"
	appRepos "github.com/shariarmdimtiaz/college-booking-server/internal/app/repositories"
)

// defaultCatalog is the college catalog a fresh database starts with.
// Each entry carries the subjects taught and one research citation.
var defaultCatalog = []struct {
	college  appModels.College
	subjects []string
	research appModels.Research
}{
	{
		college: appModels.College{
			Name:          "Harvard University",
			ImageURL:      "https://images.unsplash.com/photo-1562774053-701939374585",
			AdmissionDate: "2026-09-15",
			EventsCount:   12,
			ResearchCount: 340,
			Sports:        "Rowing, Basketball, Soccer",
			Rating:        4.9,
		},
		subjects: []string{"Computer Science", "Economics", "Law"},
		research: appModels.Research{
			Title:       "Advances in Distributed Ledger Consensus",
			Cite:        "doi.org/10.1000/harvard.2025.001",
			PublishedAt: "2025-11-02",
		},
	},
	{
		college: appModels.College{
			Name:          "Stanford University",
			ImageURL:      "https://images.unsplash.com/photo-1584697964190-7383cbf88c09",
			AdmissionDate: "2026-10-01",
			EventsCount:   9,
			ResearchCount: 415,
			Sports:        "Swimming, Tennis, Football",
			Rating:        4.8,
		},
		subjects: []string{"Artificial Intelligence", "Bioengineering", "Physics"},
		research: appModels.Research{
			Title:       "Protein Folding with Learned Potentials",
			Cite:        "doi.org/10.1000/stanford.2025.014",
			PublishedAt: "2025-08-19",
		},
	},
	{
		college: appModels.College{
			Name:          "University of Oxford",
			ImageURL:      "https://images.unsplash.com/photo-1607237138185-eedd9c632b0b",
			AdmissionDate: "2026-08-20",
			EventsCount:   15,
			ResearchCount: 278,
			Sports:        "Cricket, Rugby, Rowing",
			Rating:        4.7,
		},
		subjects: []string{"Philosophy", "Medicine", "History"},
		research: appModels.Research{
			Title:       "Longitudinal Outcomes of mRNA Therapeutics",
			Cite:        "doi.org/10.1000/oxford.2026.003",
			PublishedAt: "2026-01-27",
		},
	},
}

// CreateDefaultData populates the college catalog on an empty database.
// A catalog that already has colleges is left untouched, so reseeding on
// every startup is safe.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	collegeRepo := appRepos.NewCollegeRepository(dbPool)
	subjectRepo := appRepos.NewSubjectRepository(dbPool)
	researchRepo := appRepos.NewResearchRepository(dbPool)

	existing, err := collegeRepo.GetAll(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		lgr.Debug().Int("colleges", len(existing)).Msg("College catalog already populated, skipping seed")
		return nil
	}

	lgr.Info().Msg("Seeding default college catalog...")
	var finalErr error

	for _, entry := range defaultCatalog {
		college := entry.college
		collegeID, err := collegeRepo.Create(ctx, &college)
		if err != nil {
			lgr.Error().Err(err).Str("college", college.Name).Msg("Error seeding college")
			finalErr = errors.Join(finalErr, err)
			continue
		}

		for _, name := range entry.subjects {
			subject := &appModels.Subject{CollegeID: collegeID, Name: name, College: college.Name}
			if _, err := subjectRepo.Create(ctx, subject); err != nil {
				lgr.Error().Err(err).Str("subject", name).Msg("Error seeding subject")
				finalErr = errors.Join(finalErr, err)
			}
		}

		research := entry.research
		research.CollegeID = collegeID
		if _, err := researchRepo.Create(ctx, &research); err != nil {
			lgr.Error().Err(err).Str("title", research.Title).Msg("Error seeding research")
			finalErr = errors.Join(finalErr, err)
		}
	}

	return finalErr
}

package hunt

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
)

// SeedClue is one entry of the static hunt definition.
type SeedClue struct {
	Code             string   `json:"code"`
	VerificationCode string   `json:"verificationCode"`
	Location         Location `json:"location"`
}

// EnsureClues loads the static hunt data into the clues collection.
// Immutable fields (verification code, location) follow the seed; clues
// already present keep their progress fields, so re-running at every
// boot is safe. Clue records are never created or destroyed after this.
func (s *Service) EnsureClues(ctx context.Context, seed []SeedClue) error {
	err := s.clues.Update(func(clues *Clues) error {
		for _, sc := range seed {
			if existing := clues.Find(sc.Code); existing != nil {
				existing.VerificationCode = sc.VerificationCode
				existing.Location = sc.Location
				continue
			}
			*clues = append(*clues, &Clue{
				Code:             sc.Code,
				VerificationCode: sc.VerificationCode,
				Location:         sc.Location,
				CompletedBy:      []string{},
				Teams:            []string{},
			})
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("hunt data loaded", "clues", len(seed))
	return nil
}

// LoadHuntFile reads a hunt definition from a JSON file: an array of
// seed clues.
func LoadHuntFile(path string) ([]SeedClue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading hunt file: %w", err)
	}
	var seed []SeedClue
	if err := json.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("parsing hunt file %s: %w", path, err)
	}
	return seed, nil
}

// DemoHunt is a built-in twelve-clue hunt through central Bengaluru,
// used when no hunt file is configured.
func DemoHunt() []SeedClue {
	return []SeedClue{
		{Code: "code1", VerificationCode: "VIDHANA", Location: Location{Lat: 12.9794, Lng: 77.5907}},   // Vidhana Soudha
		{Code: "code2", VerificationCode: "CUBBON", Location: Location{Lat: 12.9763, Lng: 77.5929}},    // Cubbon Park bandstand
		{Code: "code3", VerificationCode: "MUSEUM", Location: Location{Lat: 12.9757, Lng: 77.5964}},    // Government Museum
		{Code: "code4", VerificationCode: "UB40", Location: Location{Lat: 12.9719, Lng: 77.5953}},      // UB City clock
		{Code: "code5", VerificationCode: "LALBAGH", Location: Location{Lat: 12.9507, Lng: 77.5848}},   // Lalbagh glass house
		{Code: "code6", VerificationCode: "BULLTEMP", Location: Location{Lat: 12.9421, Lng: 77.5680}},  // Bull Temple
		{Code: "code7", VerificationCode: "TIPU", Location: Location{Lat: 12.9594, Lng: 77.5739}},      // Tipu Sultan's palace
		{Code: "code8", VerificationCode: "MARKET", Location: Location{Lat: 12.9623, Lng: 77.5747}},    // KR Market
		{Code: "code9", VerificationCode: "TOWNHALL", Location: Location{Lat: 12.9662, Lng: 77.5851}},  // Town Hall steps
		{Code: "code10", VerificationCode: "MGSTATUE", Location: Location{Lat: 12.9753, Lng: 77.6059}}, // Mahatma Gandhi statue
		{Code: "code11", VerificationCode: "ULSOOR", Location: Location{Lat: 12.9810, Lng: 77.6094}},   // Ulsoor Lake jetty
		{Code: "code12", VerificationCode: "CHINSWMY", Location: Location{Lat: 12.9788, Lng: 77.5996}}, // Chinnaswamy Stadium gate
	}
}

// Command validate checks the setup JSON files in the ../setups directory
// (or the directory given as the first argument). It checks:
//   - JSON structure and required fields
//   - Position notation and board validity (one piece per species and side,
//     no land animal in the water, nobody in their own den)
//   - Both sides have material and the game is not already decided
//   - The side to move has at least one legal move
//   - No two files describe the same starting position
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/wricardo/jungle-game/game/engine"
)

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Errors contains informational messages; otherwise it
// accumulates the validation errors that were found.
type ValidationResult struct {
	File     string
	Valid    bool
	Errors   []string
	Position string // canonical encoding of the starting board, when valid
}

// validateSetup loads and validates a single setup JSON file
func validateSetup(filePath string) ValidationResult {
	result := ValidationResult{
		File:   filepath.Base(filePath),
		Valid:  true,
		Errors: []string{},
	}

	setup, err := engine.LoadSetupFile(filePath)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, err.Error())
		return result
	}

	if strings.TrimSpace(setup.Description) == "" {
		result.Valid = false
		result.Errors = append(result.Errors, "Missing description")
	}

	b, err := setup.Board()
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, err.Error())
		return result
	}

	moves := b.LegalMoves(b.Turn())
	if len(moves) == 0 {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("%s is to move but has no legal moves", b.Turn()))
	}

	if result.Valid {
		result.Position = b.Encode()
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Name: %s", setup.Name))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ To move: %s (%d legal moves)", b.Turn(), len(moves)))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Pieces: red %d, black %d", b.CountPieces(engine.Red), b.CountPieces(engine.Black)))
		if base := strings.TrimSuffix(result.File, ".json"); base != setup.Name {
			result.Errors = append(result.Errors, fmt.Sprintf("✓ Note: file name %q differs from setup name %q", base, setup.Name))
		}
	}

	return result
}

// findDuplicates marks results whose starting position repeats an earlier
// file's position as invalid
func findDuplicates(results []ValidationResult) {
	seen := make(map[string]string)
	for i := range results {
		pos := results[i].Position
		if pos == "" {
			continue
		}
		if first, ok := seen[pos]; ok {
			results[i].Valid = false
			results[i].Errors = append(results[i].Errors, fmt.Sprintf("Duplicate position: same start as %s", first))
			continue
		}
		seen[pos] = results[i].File
	}
}

// main scans the setups directory for *.json files and validates each one,
// printing a concise report and exiting with non-zero status if any are
// invalid.
func main() {
	setupsDir := "../setups"
	if len(os.Args) > 1 {
		setupsDir = os.Args[1]
	}

	files, err := filepath.Glob(filepath.Join(setupsDir, "*.json"))
	if err != nil {
		fmt.Printf("Error finding setup files: %v\n", err)
		os.Exit(1)
	}

	results := make([]ValidationResult, 0, len(files))
	for _, file := range files {
		results = append(results, validateSetup(file))
	}
	findDuplicates(results)

	allValid := true
	for _, result := range results {
		fmt.Printf("\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Println("✅ VALID")
			for _, info := range result.Errors {
				fmt.Println("  " + info)
			}
		} else {
			fmt.Println("❌ INVALID")
			allValid = false
			for _, err := range result.Errors {
				if !strings.HasPrefix(err, "✓") {
					fmt.Println("  ❌ " + err)
				}
			}
		}
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Println("✅ All setups are valid!")
	} else {
		fmt.Println("❌ Some setups have errors")
		os.Exit(1)
	}
}

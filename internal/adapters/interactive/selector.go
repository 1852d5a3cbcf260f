package interactive

import (
	"context"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/sahilm/fuzzy"
	"github.com/samber/lo"
	"github.com/trebuchet-org/safe-propose/internal/config"
	"github.com/trebuchet-org/safe-propose/internal/usecase"
)

// SelectorAdapter handles interactive Safe selection
type SelectorAdapter struct {
	config *config.RuntimeConfig
	run    func(prompt promptui.Select) (int, error)
}

// NewSelectorAdapter creates a new selector adapter
func NewSelectorAdapter(cfg *config.RuntimeConfig) *SelectorAdapter {
	return &SelectorAdapter{
		config: cfg,
		run: func(prompt promptui.Select) (int, error) {
			index, _, err := prompt.Run()
			return index, err
		},
	}
}

// SelectSafe picks one of the signer's Safes. Without --interactive the first Safe is used.
func (s *SelectorAdapter) SelectSafe(ctx context.Context, safes []common.Address) (common.Address, error) {
	if len(safes) == 0 {
		return common.Address{}, fmt.Errorf("no safes provided for selection")
	}

	if !s.config.Interactive || len(safes) == 1 {
		return safes[0], nil
	}

	options := formatSafeOptions(safes)

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "▸ {{ . | cyan }}",
		Inactive: "  {{ . | faint }}",
		Selected: "✓ {{ . | green }}",
		Help:     color.New(color.FgYellow).Sprint("Use arrow keys to navigate, Enter to select"),
	}

	index, err := s.run(promptui.Select{
		Label:     "Select the Safe to propose to",
		Items:     options,
		Templates: templates,
		Size:      10,
		Searcher:  createFuzzySearchFunc(options),
	})
	if err != nil {
		return common.Address{}, fmt.Errorf("selection cancelled: %w", err)
	}

	return safes[index], nil
}

// formatSafeOptions creates display strings for Safe selection
func formatSafeOptions(safes []common.Address) []string {
	return lo.Map(safes, func(safe common.Address, i int) string {
		return fmt.Sprintf("%d. %s", i+1, safe.Hex())
	})
}

// createFuzzySearchFunc creates a fuzzy search function for promptui
func createFuzzySearchFunc(items []string) func(input string, index int) bool {
	return func(input string, index int) bool {
		// Empty search shows all items
		if input == "" {
			return true
		}

		input = strings.ToLower(input)
		item := strings.ToLower(items[index])

		if strings.Contains(item, input) {
			return true
		}

		return len(fuzzy.Find(input, []string{item})) > 0
	}
}

// Ensure the adapter implements the interface
var _ usecase.SafeSelector = (*SelectorAdapter)(nil)

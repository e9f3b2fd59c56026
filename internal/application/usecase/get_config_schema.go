package usecase

import (
	"context"
	"sort"

	"github.com/bnema/themesync/internal/application/port"
	"github.com/bnema/themesync/internal/domain/entity"
)

// GetConfigSchemaUseCase retrieves configuration schema information.
type GetConfigSchemaUseCase struct {
	provider port.ConfigSchemaProvider
}

// NewGetConfigSchemaUseCase creates a new GetConfigSchemaUseCase.
func NewGetConfigSchemaUseCase(provider port.ConfigSchemaProvider) *GetConfigSchemaUseCase {
	return &GetConfigSchemaUseCase{
		provider: provider,
	}
}

// GetConfigSchemaInput contains input parameters for schema retrieval.
type GetConfigSchemaInput struct {
	// Section restricts the output to one section. Empty means all.
	Section string
}

// GetConfigSchemaOutput contains the schema information.
type GetConfigSchemaOutput struct {
	Keys []entity.ConfigKeyInfo
	// Sections lists section names in first-seen order.
	Sections []string
}

// Execute retrieves configuration keys with their metadata.
func (uc *GetConfigSchemaUseCase) Execute(_ context.Context, input GetConfigSchemaInput) (*GetConfigSchemaOutput, error) {
	all := uc.provider.GetSchema()

	keys := make([]entity.ConfigKeyInfo, 0, len(all))
	seen := make(map[string]int)
	var sections []string
	for _, k := range all {
		if input.Section != "" && k.Section != input.Section {
			continue
		}
		if _, ok := seen[k.Section]; !ok {
			seen[k.Section] = len(sections)
			sections = append(sections, k.Section)
		}
		keys = append(keys, k)
	}

	// Group by section, keep provider order within a section.
	sort.SliceStable(keys, func(i, j int) bool {
		return seen[keys[i].Section] < seen[keys[j].Section]
	})

	return &GetConfigSchemaOutput{
		Keys:     keys,
		Sections: sections,
	}, nil
}

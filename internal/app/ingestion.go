package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// IngestRecipes fetches recipe pages, extracts them through the AI
// collaborator and stores them in the curated repository. Individual
// page failures are logged and skipped.
func (a *App) IngestRecipes(ctx context.Context, urls []string) (int, error) {
	if a.mealGen == nil {
		return 0, fmt.Errorf("recipe ingestion requires LLM credentials")
	}

	saved := 0
	for _, url := range urls {
		title, text, err := a.extractor.FetchCleanText(url)
		if err != nil {
			a.logger.Warn("failed to fetch recipe page", zap.String("url", url), zap.Error(err))
			continue
		}

		item, err := a.mealGen.ExtractRecipe(ctx, title, text)
		if err != nil {
			a.logger.Warn("failed to extract recipe", zap.String("url", url), zap.Error(err))
			continue
		}

		if err := a.curatedRepo.Save(ctx, item); err != nil {
			a.logger.Warn("failed to save recipe", zap.String("name", item.Name), zap.Error(err))
			continue
		}

		a.logger.Info("recipe ingested", zap.String("name", item.Name), zap.String("slot", string(item.Slot)))
		saved++
	}
	return saved, nil
}

// Command gen writes the type-safe gorm query helpers under
// internal/infra/persistence/store/query. Run it from the repository root
// after changing an item or rental model.
package main

import (
	"gearshare/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.ItemModel{},
		model.RentalModel{},
	}

	g := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/store/query",
	})

	g.ApplyBasic(models...)

	g.Execute()
}

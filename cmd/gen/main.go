package main

import (
	"crewdir/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.AgencyModel{},
		model.TradeModel{},
		model.RegionModel{},
		model.AgencyTradeModel{},
		model.AgencyRegionModel{},
		model.AgencyComplianceModel{},
		model.AgencyProfileEditModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}

package catalog

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"activity-signup-service/internal/model"
)

// hclCatalogFile описывает верхний уровень HCL-файла каталога:
//
//	activity "Chess Club" {
//	  description      = "..."
//	  schedule         = "..."
//	  max_participants = 12
//	  participants     = ["michael@mergington.edu"]
//	}
type hclCatalogFile struct {
	Activities []*hclActivity `hcl:"activity,block"`
}

type hclActivity struct {
	Name            string   `hcl:"name,label"`
	Description     string   `hcl:"description"`
	Schedule        string   `hcl:"schedule"`
	MaxParticipants int      `hcl:"max_participants"`
	Participants    []string `hcl:"participants,optional"`
}

// LoadFile разбирает HCL-файл каталога. Ошибки разбора и декодирования содержат диагностику HCL.
// Проверка инвариантов (уникальность имён, вместимость) остаётся за хранилищем.
func LoadFile(path string) ([]model.Activity, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse catalog file %s: %w", path, diags)
	}

	var parsed hclCatalogFile
	diags = gohcl.DecodeBody(file.Body, nil, &parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("decode catalog file %s: %w", path, diags)
	}

	activities := make([]model.Activity, 0, len(parsed.Activities))
	for _, a := range parsed.Activities {
		participants := a.Participants
		if participants == nil {
			participants = make([]string, 0)
		}
		activities = append(activities, model.Activity{
			Name:            a.Name,
			Description:     a.Description,
			Schedule:        a.Schedule,
			MaxParticipants: a.MaxParticipants,
			Participants:    participants,
		})
	}
	return activities, nil
}

// Load возвращает каталог из файла, если путь задан, иначе встроенный каталог.
func Load(path string) ([]model.Activity, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

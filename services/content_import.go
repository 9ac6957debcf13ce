package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"travel_wonders_go/models"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// ImportResult contains the summary of the import process
type ImportResult struct {
	TotalProcessed int
	SuccessCount   int
	FailedCount    int
	Errors         []string
}

const (
	importSheetInstructions = "Instructions"
	importSheetCountries    = "Countries"
	importSheetWonders      = "Wonders"
)

var countryImportHeaders = []string{
	"Slug*", "IsoCode", "NameCS*", "NameEN", "DescriptionCS", "DescriptionEN",
	"HikingLevel", "BeachLevel", "RoadtripLevel", "MinDays", "OptimalDays",
	"AvgFlightPrice", "AvgAccommodationPrice", "AvgFoodPerDay",
	"PregnancySafe", "InfantSafe", "HeroImageURL",
}

var wonderImportHeaders = []string{
	"Slug*", "CountrySlug*", "NameCS*", "NameEN",
	"ShortDescriptionCS", "ShortDescriptionEN",
	"Latitude", "Longitude", "HikingDifficulty", "Altitude",
	"PregnancySafe", "InfantSafe", "HeroImageURL",
}

// GenerateContentTemplate generates the Excel template for the content import
func GenerateContentTemplate() (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", importSheetInstructions)

	f.SetCellValue(importSheetInstructions, "A1", "Travel content import")
	f.SetCellValue(importSheetInstructions, "A3", "Considerations:")
	f.SetCellValue(importSheetInstructions, "A4", "- Columns marked with * are required")
	f.SetCellValue(importSheetInstructions, "A5", "- Rows are matched by slug; existing records are updated")
	f.SetCellValue(importSheetInstructions, "A6", "- Wonders reference countries by slug and must come after them")
	f.SetCellValue(importSheetInstructions, "A7", "- Boolean columns accept true/false, 1/0 or yes/no")
	f.SetCellValue(importSheetInstructions, "A8", "- HeroImageURL takes a URL, or a local image path to upload into asset storage")

	titleStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	f.SetCellStyle(importSheetInstructions, "A1", "A1", titleStyle)
	f.SetColWidth(importSheetInstructions, "A", "A", 80)

	f.NewSheet(importSheetCountries)
	for i, header := range countryImportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(importSheetCountries, cell, header)
	}
	f.SetColWidth(importSheetCountries, "A", "Q", 20)

	f.SetCellValue(importSheetCountries, "A2", "iceland")
	f.SetCellValue(importSheetCountries, "B2", "IS")
	f.SetCellValue(importSheetCountries, "C2", "Island")
	f.SetCellValue(importSheetCountries, "D2", "Iceland")
	f.SetCellValue(importSheetCountries, "G2", "5")
	f.SetCellValue(importSheetCountries, "J2", "7")
	f.SetCellValue(importSheetCountries, "K2", "10")

	f.NewSheet(importSheetWonders)
	for i, header := range wonderImportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(importSheetWonders, cell, header)
	}
	f.SetColWidth(importSheetWonders, "A", "M", 20)

	f.SetCellValue(importSheetWonders, "A2", "skogafoss")
	f.SetCellValue(importSheetWonders, "B2", "iceland")
	f.SetCellValue(importSheetWonders, "C2", "Vodopád Skógafoss")
	f.SetCellValue(importSheetWonders, "D2", "Skogafoss waterfall")

	headerStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(importSheetCountries, "A1", "Q1", headerStyle)
	f.SetCellStyle(importSheetWonders, "A1", "M1", headerStyle)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write excel buffer: %w", err)
	}

	return buf, nil
}

func cellAt(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func intCell(row []string, idx int) int {
	v, err := strconv.Atoi(cellAt(row, idx))
	if err != nil {
		return 0
	}
	return v
}

func floatCell(row []string, idx int) float64 {
	v, err := strconv.ParseFloat(cellAt(row, idx), 64)
	if err != nil {
		return 0
	}
	return v
}

func boolCell(row []string, idx int) bool {
	v, ok := AsBoolean(cellAt(row, idx))
	if !ok {
		return false
	}
	return v
}

// heroImageCell resolves the HeroImageURL column. A value naming a
// readable local file is uploaded to the asset store and replaced with
// the hosted URL; URLs and anything else pass through unchanged.
func heroImageCell(row []string, idx int, collection string) string {
	value := cellAt(row, idx)
	if value == "" || strings.Contains(value, "://") {
		return value
	}
	data, err := os.ReadFile(value)
	if err != nil {
		return value
	}
	url, err := HostAsset(context.Background(), collection, filepath.Base(value), contentTypeForExt(value), data)
	if err != nil || url == "" {
		return value
	}
	return url
}

// ImportContentFromExcel parses the Excel file and upserts countries
// and wonders by slug. Country rows are processed before wonder rows so
// a wonder can reference a country from the same file.
func ImportContentFromExcel(dbConn *gorm.DB, file io.Reader) (*ImportResult, error) {
	f, err := excelize.OpenReader(file)
	if err != nil {
		return nil, fmt.Errorf("failed to open excel file: %w", err)
	}
	defer f.Close()

	result := &ImportResult{
		Errors: []string{},
	}

	if f.SheetCount < 3 {
		return nil, fmt.Errorf("invalid excel format: missing sheets")
	}

	sheets := f.GetSheetList()
	countrySheetName := sheets[1]
	wonderSheetName := sheets[2]

	countryRows, err := f.GetRows(countrySheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read countries sheet: %w", err)
	}

	tx := dbConn.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	countrySlugToID := make(map[string]string)

	for i, row := range countryRows {
		if i == 0 {
			continue
		} // Header

		slug := strings.ToLower(cellAt(row, 0))
		if slug == "" {
			continue
		}

		result.TotalProcessed++

		nameCS := cellAt(row, 2)
		if nameCS == "" {
			result.FailedCount++
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d (Country): NameCS is required", i+1))
			continue
		}

		country := models.Country{
			Slug:             slug,
			IsoCode:          strings.ToUpper(cellAt(row, 1)),
			NameCS:           nameCS,
			NameEN:           cellAt(row, 3),
			DescriptionCS:    cellAt(row, 4),
			DescriptionEN:    cellAt(row, 5),
			HikingLevel:      intCell(row, 6),
			BeachLevel:       intCell(row, 7),
			RoadtripLevel:    intCell(row, 8),
			MinDays:          intCell(row, 9),
			OptimalDays:      intCell(row, 10),
			AvgFlightPrice:   floatCell(row, 11),
			AvgAccommodation: floatCell(row, 12),
			AvgFoodPerDay:    floatCell(row, 13),
			PregnancySafe:    boolCell(row, 14),
			InfantSafe:       boolCell(row, 15),
			HeroImageURL:     heroImageCell(row, 16, "countries"),
			Enabled:          true,
		}

		var existing models.Country
		err := tx.Where("slug = ?", slug).First(&existing).Error
		if err == nil {
			country.ID = existing.ID
			if err := tx.Model(&existing).Updates(&country).Error; err != nil {
				result.FailedCount++
				result.Errors = append(result.Errors, fmt.Sprintf("Row %d (Country): Failed to update %s: %v", i+1, slug, err))
				continue
			}
			countrySlugToID[slug] = existing.ID
		} else if err == gorm.ErrRecordNotFound {
			if err := tx.Create(&country).Error; err != nil {
				result.FailedCount++
				result.Errors = append(result.Errors, fmt.Sprintf("Row %d (Country): Failed to create %s: %v", i+1, slug, err))
				continue
			}
			countrySlugToID[slug] = country.ID
		} else {
			tx.Rollback()
			return result, err
		}

		result.SuccessCount++
	}

	wonderRows, err := f.GetRows(wonderSheetName)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to read wonders sheet: %w", err)
	}

	for i, row := range wonderRows {
		if i == 0 {
			continue
		} // Header

		slug := strings.ToLower(cellAt(row, 0))
		if slug == "" {
			continue
		}

		result.TotalProcessed++

		countrySlug := strings.ToLower(cellAt(row, 1))
		countryID, ok := countrySlugToID[countrySlug]
		if !ok {
			var country models.Country
			if err := tx.Where("slug = ?", countrySlug).First(&country).Error; err != nil {
				result.FailedCount++
				result.Errors = append(result.Errors, fmt.Sprintf("Row %d (Wonder): Country '%s' not found", i+1, countrySlug))
				continue
			}
			countryID = country.ID
			countrySlugToID[countrySlug] = countryID
		}

		nameCS := cellAt(row, 2)
		if nameCS == "" {
			result.FailedCount++
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d (Wonder): NameCS is required", i+1))
			continue
		}

		wonder := models.Wonder{
			Slug:               slug,
			CountryID:          countryID,
			NameCS:             nameCS,
			NameEN:             cellAt(row, 3),
			ShortDescriptionCS: cellAt(row, 4),
			ShortDescriptionEN: cellAt(row, 5),
			Latitude:           floatCell(row, 6),
			Longitude:          floatCell(row, 7),
			HikingDifficulty:   intCell(row, 8),
			Altitude:           intCell(row, 9),
			PregnancySafe:      boolCell(row, 10),
			InfantSafe:         boolCell(row, 11),
			HeroImageURL:       heroImageCell(row, 12, "wonders"),
		}

		var existing models.Wonder
		err := tx.Where("slug = ?", slug).First(&existing).Error
		if err == nil {
			wonder.ID = existing.ID
			if err := tx.Model(&existing).Updates(&wonder).Error; err != nil {
				result.FailedCount++
				result.Errors = append(result.Errors, fmt.Sprintf("Row %d (Wonder): Failed to update %s: %v", i+1, slug, err))
				continue
			}
		} else if err == gorm.ErrRecordNotFound {
			if err := tx.Create(&wonder).Error; err != nil {
				result.FailedCount++
				result.Errors = append(result.Errors, fmt.Sprintf("Row %d (Wonder): Failed to create %s: %v", i+1, slug, err))
				continue
			}
		} else {
			tx.Rollback()
			return result, err
		}

		result.SuccessCount++
	}

	if result.FailedCount > 0 && result.SuccessCount == 0 {
		tx.Rollback()
		return result, fmt.Errorf("all rows failed")
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return result, nil
}

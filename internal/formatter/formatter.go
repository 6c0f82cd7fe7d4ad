// package formatter provides functions to export chart and catalog data to various formats (CSV, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/desertthunder/backstage/internal/models"
	"github.com/desertthunder/backstage/internal/shared"
)

// ChartToCSV converts a popularity listing to CSV format with columns: Rank, ID, Name, Genre, City, Plays, Followers, Rating, Verified
func ChartToCSV(listing []models.PublicProfile) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"Rank", "ID", "Name", "Genre", "City", "Plays", "Followers", "Rating", "Verified"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for i, artist := range listing {
		record := []string{
			strconv.Itoa(i + 1),
			artist.ID,
			artist.Name,
			artist.PrimaryGenre,
			artist.City,
			strconv.FormatInt(artist.Plays, 10),
			strconv.FormatInt(artist.Followers, 10),
			strconv.FormatFloat(artist.Rating, 'f', 1, 64),
			strconv.FormatBool(artist.Verified),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// CatalogToCSV converts a generated catalog to CSV format with columns: ID, Title, Artist, Duration, Plays, Likes, Genre, Released, Explicit
func CatalogToCSV(tracks []models.CatalogTrack) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Title", "Artist", "Duration", "Plays", "Likes", "Genre", "Released", "Explicit"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, track := range tracks {
		record := []string{
			track.ID,
			track.Title,
			track.ArtistName,
			track.Duration,
			strconv.FormatInt(track.Plays, 10),
			strconv.FormatInt(track.Likes, 10),
			track.Genre,
			track.ReleaseDate,
			strconv.FormatBool(track.Explicit),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ChartToMarkdown converts a popularity listing to a Markdown table
func ChartToMarkdown(listing []models.PublicProfile) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString("# Popularity Chart\n\n")
	buf.WriteString(fmt.Sprintf("**Artists**: %d\n\n", len(listing)))

	buf.WriteString("| # | Artist | Genre | City | Plays | Followers |\n")
	buf.WriteString("|---|--------|-------|------|-------|----------|\n")
	for i, artist := range listing {
		name := artist.Name
		if artist.Verified {
			name += " ✓"
		}
		buf.WriteString(fmt.Sprintf("| %d | %s | %s | %s | %d | %d |\n",
			i+1, name, artist.PrimaryGenre, artist.City, artist.Plays, artist.Followers))
	}

	return buf.Bytes(), nil
}

// CatalogToMarkdown converts a generated catalog to Markdown format
func CatalogToMarkdown(tracks []models.CatalogTrack) ([]byte, error) {
	var buf bytes.Buffer

	if len(tracks) > 0 {
		buf.WriteString(fmt.Sprintf("# %s\n\n", tracks[0].ArtistName))
	}
	buf.WriteString(fmt.Sprintf("**Tracks**: %d\n\n", len(tracks)))

	buf.WriteString("## Tracks\n\n")
	for i, track := range tracks {
		explicit := ""
		if track.Explicit {
			explicit = " (E)"
		}
		buf.WriteString(fmt.Sprintf("%d. %s%s [%s] - %s, %d plays\n",
			i+1, track.Title, explicit, track.Duration, track.ReleaseDate, track.Plays))
	}

	return buf.Bytes(), nil
}

// ChartToText converts a popularity listing to plain text format
func ChartToText(listing []models.PublicProfile) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Popularity chart (%d artists)\n\n", len(listing)))
	for i, artist := range listing {
		buf.WriteString(fmt.Sprintf("%d. %s - %s (%d plays)\n", i+1, artist.Name, artist.PrimaryGenre, artist.Plays))
	}

	return buf.Bytes(), nil
}

// ChartExportResult contains the paths of files created by WriteChartExport
type ChartExportResult struct {
	ChartFile    string
	MetadataFile string
}

// WriteChartExport exports a popularity listing to CSV with an accompanying metadata JSON file.
//
// Defaults to "chart" as the base filename & creates {base}_chart.csv and {base}_metadata.json
func WriteChartExport(listing []models.PublicProfile, baseFilepath string) (*ChartExportResult, error) {
	if baseFilepath == "" {
		baseFilepath = "chart"
	}

	csvData, err := ChartToCSV(listing)
	if err != nil {
		return nil, fmt.Errorf("failed to generate CSV: %w", err)
	}

	chartFile := baseFilepath + "_chart.csv"
	if err := os.WriteFile(chartFile, csvData, 0644); err != nil {
		return nil, fmt.Errorf("failed to write CSV file: %w", err)
	}

	metadataJSON, err := shared.MarshalJSON(listing, true)
	if err != nil {
		return nil, fmt.Errorf("failed to generate metadata JSON: %w", err)
	}

	metadataFile := baseFilepath + "_metadata.json"
	if err := os.WriteFile(metadataFile, metadataJSON, 0644); err != nil {
		return nil, fmt.Errorf("failed to write metadata file: %w", err)
	}

	return &ChartExportResult{
		ChartFile:    chartFile,
		MetadataFile: metadataFile,
	}, nil
}

// WriteCatalogExport exports a generated catalog to CSV at {base}_catalog.csv.
//
// The base filename defaults to the artist id.
func WriteCatalogExport(tracks []models.CatalogTrack, baseFilepath string) (string, error) {
	if baseFilepath == "" && len(tracks) > 0 {
		baseFilepath = tracks[0].ArtistID
	}
	if baseFilepath == "" {
		baseFilepath = "catalog"
	}

	csvData, err := CatalogToCSV(tracks)
	if err != nil {
		return "", fmt.Errorf("failed to generate CSV: %w", err)
	}

	catalogFile := baseFilepath + "_catalog.csv"
	if err := os.WriteFile(catalogFile, csvData, 0644); err != nil {
		return "", fmt.Errorf("failed to write CSV file: %w", err)
	}

	return catalogFile, nil
}

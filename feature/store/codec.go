package store

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"corporate-web/core/utils"
	"corporate-web/feature/asset"
	"corporate-web/feature/asset/models"
)

// header is the persisted column order, matching the table schema.
var header = []string{
	"asset_id",
	"corp_id",
	"asset_type",
	"creation_time",
	"monetized_value",
	"reinvested",
	"transferable_value",
}

// encodeCSV writes the table as CSV, header first. An empty table still
// gets a header so the schema is recorded.
func encodeCSV(w io.Writer, table asset.Table) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write table header: %w", err)
	}

	for _, row := range table.Rows() {
		record := []string{
			row.AssetID,
			row.CorpID,
			row.AssetType,
			row.CreationTime.Format(models.TimeLayout),
			strconv.FormatFloat(row.MonetizedValue, 'f', -1, 64),
			strconv.Itoa(row.Reinvested),
			strconv.FormatFloat(row.TransferableValue, 'f', -1, 64),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write table row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// decodeCSV reads a persisted table. Value cells are coerced best-effort;
// timestamps that fail to parse are left zero rather than aborting the load.
func decodeCSV(r io.Reader) (asset.Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = len(header)

	first, err := reader.Read()
	if err == io.EOF {
		return asset.NewTable(), nil
	}
	if err != nil {
		return asset.NewTable(), fmt.Errorf("failed to read table header: %w", err)
	}
	if len(first) == 0 || first[0] != "asset_id" {
		return asset.NewTable(), fmt.Errorf("unexpected table header %v", first)
	}

	table := asset.NewTable()
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return asset.NewTable(), fmt.Errorf("failed to read table row: %w", err)
		}

		created, _ := time.Parse(models.TimeLayout, record[3])
		table.Append(models.Asset{
			AssetID:           record[0],
			CorpID:            record[1],
			AssetType:         record[2],
			CreationTime:      created,
			MonetizedValue:    utils.ToFloat(record[4]),
			Reinvested:        utils.ToInt(record[5]),
			TransferableValue: utils.ToFloat(record[6]),
		})
	}

	return table, nil
}

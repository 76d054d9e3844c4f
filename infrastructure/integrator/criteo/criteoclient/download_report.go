package criteoclient

import (
	"context"
	"encoding/xml"
	"io"
	"net/http"

	criteodomain "github.com/mara/criteo-performance-downloader/infrastructure/integrator/criteo/domain"
	"github.com/pkg/errors"
)

// DownloadReport dereferences a report download URL and parses the result
// into its row table. The document is XML: the root wraps a table element
// whose rows child holds one row element per record, record fields carried
// as attributes.
func (c *CriteoClient) DownloadReport(downloadURL string) (*criteodomain.ReportTable, error) {
	if err := c.limiter.Wait(context.Background()); err != nil {
		return nil, errors.Wrap(err, "waiting for rate limiter")
	}

	resp, err := c.httpClient.Get(downloadURL)
	if err != nil {
		return nil, errors.Wrapf(err, "fetching report from %s", downloadURL)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("report fetch returned status %d", resp.StatusCode)
	}

	table, err := parseReportDocument(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing report from %s", downloadURL)
	}

	return table, nil
}

// parseReportDocument walks the report XML and collects the row elements
// found under the first rows element, preserving document order.
func parseReportDocument(r io.Reader) (*criteodomain.ReportTable, error) {
	decoder := xml.NewDecoder(r)
	table := &criteodomain.ReportTable{}

	sawRows := false
	inRows := false
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := token.(type) {
		case xml.StartElement:
			if t.Name.Local == "rows" && !sawRows {
				sawRows = true
				inRows = true
				continue
			}
			if inRows && t.Name.Local == "row" {
				row := make(criteodomain.ReportRow, len(t.Attr))
				for _, attr := range t.Attr {
					row[attr.Name.Local] = attr.Value
				}
				table.Rows = append(table.Rows, row)
			}
		case xml.EndElement:
			if t.Name.Local == "rows" {
				inRows = false
			}
		}
	}

	if !sawRows {
		return nil, errors.New("report document has no rows element")
	}

	return table, nil
}

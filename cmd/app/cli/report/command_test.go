package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ganeshsankaran/curve-surfer/internal/model"
)

func TestWriteCharts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.html")
	report := &model.Report{
		Filter: model.Filter{Dept: "CMPSC"},
		AvgGPAPerQuarter: &model.Chart{
			Labels: []string{"Fall 2019", "Winter 2020"},
			Data:   []float64{3.2, 3.4},
		},
	}

	require.NoError(t, writeCharts(path, report))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Average GPA per Quarter")
}

func TestWriteChartsMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "report.html")
	assert.Error(t, writeCharts(path, &model.Report{}))
}

package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/require"

	"github.com/uyouii/natural-breaks-csv/common"
	"github.com/uyouii/natural-breaks-csv/csvio"
	"github.com/uyouii/natural-breaks-csv/internal/json"
	"github.com/uyouii/natural-breaks-csv/model"
)

const scoresCSV = "ID,SCORE\n1,50\n2,1\n3,51\n4,2\n5,52\n6,3\n"

func writeInput(t *testing.T, content string) (input, output string) {
	t.Helper()

	dir := t.TempDir()
	input = filepath.Join(dir, "in.csv")
	require.NoError(t, os.WriteFile(input, []byte(content), 0o644))
	return input, filepath.Join(dir, "out.csv")
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	pterm.DisableStyling()
	root := Prepare()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append(args, "--log-level", "error"))
	err := root.Execute()
	return out.String(), err
}

func TestClassifyCSV(t *testing.T) {
	input, output := writeInput(t, scoresCSV)

	stdout, err := run(t, input, output, "SCORE", "-n", "2")
	require.NoError(t, err)
	require.Contains(t, stdout, "[6 rows x 3 columns]")
	require.Contains(t, stdout, "JENKS_BIN")

	got, err := os.ReadFile(output)
	require.NoError(t, err)
	require.Equal(t, "ID,SCORE,JENKS_BIN\n2,1,1\n4,2,1\n6,3,1\n1,50,2\n3,51,2\n5,52,2\n", string(got))
}

func TestClassifyCSV_EmptyClass(t *testing.T) {
	input, output := writeInput(t, "SCORE\n5\n5\n5\n5\n")

	_, err := run(t, input, output, "SCORE", "-n", "2")
	require.NoError(t, err)

	got, err := os.ReadFile(output)
	require.NoError(t, err)
	require.Equal(t, "SCORE,JENKS_BIN\n5,1\n5,1\n5,1\n5,1\n", string(got))
}

func TestClassifyCSV_InvalidInput(t *testing.T) {
	input, output := writeInput(t, "SCORE\n1\n2\n")

	_, err := run(t, input, output, "SCORE", "-n", "5")
	require.ErrorIs(t, err, common.ErrorInvalidInput)
	require.NoFileExists(t, output)
}

func TestClassifyCSV_ColumnNotFound(t *testing.T) {
	input, output := writeInput(t, scoresCSV)

	_, err := run(t, input, output, "RANK")
	require.ErrorIs(t, err, common.ErrorColumnNotFound)
	require.NoFileExists(t, output)
}

func TestClassifyCSV_WrongArgs(t *testing.T) {
	_, err := run(t, "in.csv", "out.csv")
	require.Error(t, err)
}

func TestClassifyCSV_JSONSummary(t *testing.T) {
	input, output := writeInput(t, scoresCSV)

	stdout, err := run(t, input, output, "SCORE", "-n", "2", "--json", "--label-column", "BIN")
	require.NoError(t, err)

	s := summary{}
	require.NoError(t, json.Unmarshal([]byte(stdout), &s))
	require.Equal(t, "SCORE", s.Field)
	require.Equal(t, 6, s.Rows)
	require.Equal(t, 2, s.Classes)
	require.Equal(t, model.Breaks{1, 3, 52}, s.Breaks)
	require.Equal(t, []int{3, 3}, s.ClassSizes)
	require.InDelta(t, (3605.5-4)/3605.5, s.GVF, 1e-12)

	got, err := os.ReadFile(output)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(got), "ID,SCORE,BIN\n"))
}

func TestClassifyCSV_AutoClasses(t *testing.T) {
	input, output := writeInput(t, scoresCSV)

	stdout, err := run(t, input, output, "SCORE", "--gvf-threshold", "0.8", "--max-classes", "5", "--json")
	require.NoError(t, err)

	s := summary{}
	require.NoError(t, json.Unmarshal([]byte(stdout), &s))
	require.Equal(t, 2, s.Classes)
}

func TestClassifyCSV_Plot(t *testing.T) {
	input, output := writeInput(t, scoresCSV)
	plotFile := filepath.Join(filepath.Dir(output), "breaks.svg")

	_, err := run(t, input, output, "SCORE", "-n", "2", "--plot", "--plot-file", plotFile)
	require.NoError(t, err)
	require.FileExists(t, plotFile)
	require.FileExists(t, output)
}

func TestClassifyCSV_ConfigFile(t *testing.T) {
	input, output := writeInput(t, "ID,SCORE\n1,10\n2,1000\n3,100\n4,11\n5,1001\n6,101\n")
	configFile := filepath.Join(filepath.Dir(output), "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("classes: 3\nlabel_column: CLASS\n"), 0o644))

	_, err := run(t, input, output, "SCORE", "-c", configFile)
	require.NoError(t, err)

	got, err := os.ReadFile(output)
	require.NoError(t, err)
	require.Equal(t, "ID,SCORE,CLASS\n1,10,1\n4,11,1\n3,100,2\n6,101,2\n2,1000,3\n5,1001,3\n", string(got))
}

func TestClassifyCSV_ReplacesLabelColumn(t *testing.T) {
	input, output := writeInput(t, "SCORE,JENKS_BIN\n1,9\n50,9\n")

	_, err := run(t, input, output, "SCORE", "-n", "2")
	require.NoError(t, err)

	got, err := os.ReadFile(output)
	require.NoError(t, err)
	require.Equal(t, "SCORE,JENKS_BIN\n1,1\n50,2\n", string(got))
}

func TestPrintTable_Preview(t *testing.T) {
	pterm.DisableStyling()

	table := &model.Table{Header: []string{"ID", "SCORE"}}
	for i := 0; i < 20; i++ {
		table.Rows = append(table.Rows, []string{fmt.Sprint(i), fmt.Sprint(i * 10)})
	}

	var out bytes.Buffer
	require.NoError(t, printTable(&out, table))
	require.Contains(t, out.String(), "...")
	require.Contains(t, out.String(), "190")
	require.NotContains(t, out.String(), "100")
	require.Contains(t, out.String(), "[20 rows x 2 columns]")
}

func TestClassifyCSV_KeepsCellsAsRead(t *testing.T) {
	input, output := writeInput(t, "NAME, SCORE_NOTE,SCORE\n  padded, a ,1\nx,b,50\n")

	_, err := run(t, input, output, "SCORE", "-n", "2")
	require.NoError(t, err)

	got, err := csvio.ReadTable(context.Background(), output)
	require.NoError(t, err)
	require.Equal(t, &model.Table{
		Header: []string{"NAME", " SCORE_NOTE", "SCORE", "JENKS_BIN"},
		Rows:   [][]string{{"  padded", " a ", "1", "1"}, {"x", "b", "50", "2"}},
	}, got)
}

func TestClassifyCSV_LabelColumnIsField(t *testing.T) {
	input, output := writeInput(t, scoresCSV)

	_, err := run(t, input, output, "SCORE", "-n", "2", "--label-column", "SCORE")
	require.ErrorIs(t, err, common.ErrorInvalidInput)
	require.ErrorContains(t, err, "label column")
	require.NoFileExists(t, output)
}

func TestClassifyCSV_ZeroClasses(t *testing.T) {
	input, output := writeInput(t, scoresCSV)

	_, err := run(t, input, output, "SCORE", "-n", "0")
	require.ErrorIs(t, err, common.ErrorInvalidInput)
	require.NoFileExists(t, output)
}

package results

import (
	"bytes"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wizzomafizzo/underwrite/internal/constants"
	"github.com/wizzomafizzo/underwrite/internal/testutil"
	"github.com/wizzomafizzo/underwrite/internal/underwriting"
)

func TestWrite(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := Write(&buf, []underwriting.Result{
		result(1, underwriting.CreditScoreLow),
		result(7, underwriting.Approved),
	})
	require.NoError(t, err)

	assert.Equal(t, testutil.CSV(
		"application_id,decision,reason_code,reason_text",
		"1,DECLINE,CREDIT_SCORE_LOW,Credit score below minimum threshold.",
		"7,APPROVE,APPROVED,All underwriting rules satisfied.",
	), buf.String())
}

func TestWriteEmptyHasHeader(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, nil))
	assert.Equal(t, "application_id,decision,reason_code,reason_text\n", buf.String())
}

func TestWriteRejectsUnsorted(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := Write(&buf, []underwriting.Result{result(2, underwriting.Approved), result(1, underwriting.Approved)})
	require.ErrorIs(t, err, ErrUnsorted)
	assert.Zero(t, buf.Len())
}

func TestWriteFileOverwrites(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	path := "outputs/decision_results.csv"
	testutil.WriteFile(t, fs, path, "old,content\nthat,should\ngo,away\n")

	require.NoError(t, WriteFile(fs, path, []underwriting.Result{result(3, underwriting.IncomeLow)}))

	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	assert.Equal(t, testutil.CSV(
		"application_id,decision,reason_code,reason_text",
		"3,DECLINE,INCOME_LOW,Income below minimum required level.",
	), string(data))

	exists, err := afero.Exists(fs, path+constants.TempSuffix)
	require.NoError(t, err)
	assert.False(t, exists, "temporary file should be renamed away")
}

func TestWriteFileUnsortedLeavesPriorOutput(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	path := "out.csv"
	testutil.WriteFile(t, fs, path, "previous\n")

	err := WriteFile(fs, path, []underwriting.Result{result(9, underwriting.Approved), result(1, underwriting.Approved)})
	require.ErrorIs(t, err, ErrUnsorted)

	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	assert.Equal(t, "previous\n", string(data))
}

func TestWriteFileReadOnly(t *testing.T) {
	t.Parallel()

	base := afero.NewMemMapFs()
	testutil.WriteFile(t, base, "out.csv", "previous\n")

	err := WriteFile(afero.NewReadOnlyFs(base), "out.csv", nil)
	require.Error(t, err)

	data, err := afero.ReadFile(base, "out.csv")
	require.NoError(t, err)
	assert.Equal(t, "previous\n", string(data))
}

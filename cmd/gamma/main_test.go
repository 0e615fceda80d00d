package main

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runBatch(t *testing.T, input string) (stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	logger := log.New(&bytes.Buffer{}, "", 0)
	err := run(strings.NewReader(input), &out, &errOut, logger)
	require.NoError(t, err)
	return out.String(), errOut.String()
}

func TestRun_batchInitAcknowledged(t *testing.T) {
	out, errOut := runBatch(t, "B 4 2 2 3\nm 1 0 0\nm 1 1 0\nm 2 2 0\nm 2 3 0\nb 1\n")
	assert.Empty(t, errOut)
	assert.Equal(t, "OK 1\n1\n1\n1\n1\n2\n", out)
}

func TestRun_blankAndCommentLinesIgnoredBeforeInit(t *testing.T) {
	out, _ := runBatch(t, "\n# a comment\n   \nB 2 2 2 2\np\n")
	assert.Equal(t, "OK 4\n..\n..\n", out)
}

func TestRun_malformedInitLineReportsErrorAndKeepsScanning(t *testing.T) {
	out, errOut := runBatch(t, "bogus line\nB 2 2 2 2\nb 1\n")
	assert.Equal(t, "ERROR 1\n", errOut)
	assert.Equal(t, "OK 2\n0\n", out)
}

func TestRun_malformedBatchLineReportsErrorButGameContinues(t *testing.T) {
	out, errOut := runBatch(t, "B 3 3 2 2\nx 1 2 3\nm 1 0 0\n")
	assert.Equal(t, "ERROR 2\n", errOut)
	assert.Equal(t, "OK 1\n1\n", out)
}

func TestRun_interactiveInitSuppressesAck(t *testing.T) {
	out, errOut := runBatch(t, "I 2 2 2 2\nb 1\n")
	assert.Empty(t, errOut)
	assert.Equal(t, "0\n", out)
}

func TestRun_goldenAndQueryCommands(t *testing.T) {
	out, errOut := runBatch(t, "B 3 3 2 2\nm 1 0 0\nm 2 1 0\nm 1 2 0\ng 1 1 0\nq 1\n")
	assert.Empty(t, errOut)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "OK 1", lines[0])
	assert.Equal(t, "1", lines[1]) // m 1 0 0
	assert.Equal(t, "1", lines[2]) // m 2 1 0
	assert.Equal(t, "1", lines[3]) // m 1 2 0
	assert.Equal(t, "1", lines[4]) // g 1 1 0 succeeds
	assert.Equal(t, "0", lines[5]) // q 1: golden already used
}

func TestRun_missingArgumentIsError(t *testing.T) {
	_, errOut := runBatch(t, "B 3 3 2 2\nm 1 0\n")
	assert.Equal(t, "ERROR 2\n", errOut)
}

func TestRun_noInitLineIsNotFatal(t *testing.T) {
	out, errOut := runBatch(t, "# just a comment\n\n")
	assert.Empty(t, out)
	assert.Empty(t, errOut)
}

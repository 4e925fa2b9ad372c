package export

import (
	"errors"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srediag/shm-probe/pkg/probe"
)

func testReport() *probe.Report {
	return &probe.Report{
		GOOS:   "linux",
		GOARCH: "amd64",
		Sections: []probe.Section{
			{
				Name: probe.SectionSync,
				Facts: []probe.Fact{
					{Name: "sem_t", Kind: probe.FactSize, Value: 32},
					{Name: "SEM_FAILED", Kind: probe.FactAddress, Value: 0},
					{Name: "PTHREAD_PROCESS_SHARED", Kind: probe.FactFlag, Value: 1},
				},
			},
			{
				Name: probe.SectionHost,
				Facts: []probe.Fact{
					{Name: "hostname", Kind: probe.FactText, Str: "buildbox"},
				},
			},
		},
	}
}

func TestFactsCollectorGauges(t *testing.T) {
	c := NewFactsCollector(testReport())

	expected := `
# HELP shmprobe_sync_sem_t Fact sem_t (size) from the sync section.
# TYPE shmprobe_sync_sem_t gauge
shmprobe_sync_sem_t 32
`
	require.NoError(t, testutil.CollectAndCompare(c, strings.NewReader(expected), "shmprobe_sync_sem_t"))

	expected = `
# HELP shmprobe_host_hostname_info Text fact hostname from the host section.
# TYPE shmprobe_host_hostname_info gauge
shmprobe_host_hostname_info{value="buildbox"} 1
`
	require.NoError(t, testutil.CollectAndCompare(c, strings.NewReader(expected), "shmprobe_host_hostname_info"))
}

func TestFactsCollectorSectionUp(t *testing.T) {
	report := testReport()
	report.Sections = append(report.Sections, probe.Section{
		Name: probe.SectionMemory,
		Err:  errors.New("unavailable"),
	})
	c := NewFactsCollector(report)

	expected := `
# HELP shmprobe_section_up Whether the section probe succeeded.
# TYPE shmprobe_section_up gauge
shmprobe_section_up{section="host"} 1
shmprobe_section_up{section="memory"} 0
shmprobe_section_up{section="sync"} 1
`
	require.NoError(t, testutil.CollectAndCompare(c, strings.NewReader(expected), "shmprobe_section_up"))
}

func TestDumpFamilies(t *testing.T) {
	families, err := DumpFamilies(testReport())
	require.NoError(t, err)

	names := make(map[string]struct{}, len(families))
	for _, mf := range families {
		names[mf.GetName()] = struct{}{}
	}
	for _, want := range []string{
		"shmprobe_section_up",
		"shmprobe_sync_sem_t",
		"shmprobe_sync_sem_failed",
		"shmprobe_sync_pthread_process_shared",
		"shmprobe_host_hostname_info",
	} {
		_, ok := names[want]
		assert.True(t, ok, "missing family %s", want)
	}
}

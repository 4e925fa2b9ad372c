package render

import (
	"fmt"

	"github.com/valyala/bytebufferpool"

	"github.com/srediag/shm-probe/pkg/probe"
)

// The sync section keeps the banner lines of the original C diagnostic so
// its output stays diff-compatible with saved probes.
const (
	syncSizeBanner  = "typename: size_in_bytes"
	syncMacroBanner = "MACRO or other special name: value"
)

// Text renders the report as `name: value` lines. The sync section is
// preceded by the historical banners; other sections get a `# name` header.
func Text(report *probe.Report) ([]byte, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	for i := range report.Sections {
		sec := &report.Sections[i]
		if sec.Err != nil {
			fmt.Fprintf(buf, "# %s: error: %v\n", sec.Name, sec.Err)
			continue
		}
		if sec.Name == probe.SectionSync {
			writeSyncSection(buf, sec)
			continue
		}
		fmt.Fprintf(buf, "# %s\n", sec.Name)
		for _, f := range sec.Facts {
			fmt.Fprintf(buf, "%s: %s\n", f.Name, f.FormatValue())
		}
	}

	out := make([]byte, buf.Len())
	copy(out, buf.B)
	return out, nil
}

func writeSyncSection(buf *bytebufferpool.ByteBuffer, sec *probe.Section) {
	_, _ = buf.WriteString(syncSizeBanner + "\n")
	wroteMacroBanner := false
	for _, f := range sec.Facts {
		if !wroteMacroBanner && f.Kind != probe.FactSize {
			_, _ = buf.WriteString(syncMacroBanner + "\n")
			wroteMacroBanner = true
		}
		fmt.Fprintf(buf, "%s: %s\n", f.Name, f.FormatValue())
	}
}

package render

import (
	"fmt"

	"github.com/idntools/idnls/internal/linebuf"
	"github.com/idntools/idnls/internal/serverlist"
)

// LineCapacity bounds every rendered line, ellipsis included.
const LineCapacity = 200

// Renderer turns server records into inventory lines: one summary line per
// server followed by one line per hosted service. Overlong detail is cut by
// the line buffer rather than failing the render.
type Renderer struct {
	out  Sink
	errs Sink
}

// New returns a Renderer emitting inventory lines on out and diagnostics
// on errs.
func New(out, errs Sink) *Renderer {
	return &Renderer{out: out, errs: errs}
}

// Server emits the lines describing srv.
func (r *Renderer) Server(srv *serverlist.Server) {
	buf := linebuf.New(LineCapacity)

	// Unit identifier as hex pairs, vendor byte split off.
	for i, b := range srv.UnitID {
		buf.Appendf("%02X", b)
		if i == 0 && len(srv.UnitID) > 1 {
			buf.Appendf("-")
		}
	}

	if srv.HostName != "" {
		buf.Appendf("(%s)", srv.HostName)
	}

	for i, addr := range srv.Addresses {
		if i == 0 {
			buf.Appendf(" at ")
		} else {
			buf.Appendf(", ")
		}

		text := "<error>"
		if addr.IP.Is4() {
			text = addr.IP.String()
		} else {
			r.errs.Line(fmt.Sprintf("cannot render address %d of server %s", i, srv.UnitID))
		}

		comment := ""
		if addr.Ambiguous {
			comment = " (ambiguous)"
		} else if addr.Unreachable {
			comment = " (unreachable)"
		}
		buf.Appendf("%s%s", text, comment)
	}

	r.out.Line(buf.String())

	idFormat := fmt.Sprintf("  %%%dd: ", idWidth(len(srv.Services)))
	for _, svc := range srv.Services {
		buf.Reset()
		buf.Appendf(idFormat, svc.ID)

		name := svc.Name
		if name == "" {
			name = "<unnamed>"
		}
		buf.Appendf("%s", name)

		if rel, ok := srv.RelayFor(svc); ok {
			relayName := rel.Name
			if relayName == "" {
				relayName = "<blank>"
			}
			buf.Appendf("@%s", relayName)
		}

		buf.Appendf(" (%s)", svc.Type)
		r.out.Line(buf.String())
	}
}

// idWidth is the field width that right-justifies every service ID of a
// server with the given service count.
func idWidth(count int) int {
	width := 1
	if count >= 10 {
		width++
	}
	if count >= 100 {
		width++
	}
	return width
}

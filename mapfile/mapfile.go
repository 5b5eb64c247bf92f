package mapfile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/paulmach/orb"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/metroroute/core"
)

// ErrInvalidFile is returned for any document that cannot become a core.Map.
var ErrInvalidFile = errors.New("mapfile: invalid map file")

// Document is the on-disk shape of a map.
type Document struct {
	Stations    []StationEntry    `yaml:"stations"`
	Connections []ConnectionEntry `yaml:"connections"`
}

// StationEntry is one station row.
type StationEntry struct {
	ID       int     `yaml:"id"`
	Name     string  `yaml:"name"`
	Line     string  `yaml:"line"`
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Velocity float64 `yaml:"velocity"`
}

// ConnectionEntry is one directed connection row, time in seconds.
type ConnectionEntry struct {
	From int     `yaml:"from"`
	To   int     `yaml:"to"`
	Time float64 `yaml:"time"`
}

// Decode parses a YAML document from r and builds the map it describes.
// Stations are added first, then connections, both in document order.
// An empty input yields an empty map.
func Decode(r io.Reader) (*core.Map, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return core.NewMap(), nil
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidFile, err)
	}

	return Build(doc)
}

// Build turns an already decoded Document into a core.Map.
func Build(doc Document) (*core.Map, error) {
	m := core.NewMap()
	for i, s := range doc.Stations {
		st := core.Station{
			ID:       core.StationID(s.ID),
			Name:     s.Name,
			Line:     s.Line,
			Location: orb.Point{s.X, s.Y},
			Velocity: s.Velocity,
		}
		if err := m.AddStation(st); err != nil {
			return nil, fmt.Errorf("%w: stations[%d]: %w", ErrInvalidFile, i, err)
		}
	}
	for i, c := range doc.Connections {
		if err := m.AddConnection(core.StationID(c.From), core.StationID(c.To), c.Time); err != nil {
			return nil, fmt.Errorf("%w: connections[%d]: %w", ErrInvalidFile, i, err)
		}
	}

	return m, nil
}

// Load opens path and decodes it.
func Load(path string) (*core.Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mapfile: open %s: %w", path, err)
	}
	defer f.Close()

	m, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

// Snapshot captures m as a Document: stations by id, connections by source
// id and then insertion order.
func Snapshot(m *core.Map) Document {
	var doc Document
	for _, st := range m.Stations() {
		doc.Stations = append(doc.Stations, StationEntry{
			ID:       int(st.ID),
			Name:     st.Name,
			Line:     st.Line,
			X:        st.Location.X(),
			Y:        st.Location.Y(),
			Velocity: st.Velocity,
		})
		for _, c := range m.Connections(st.ID) {
			doc.Connections = append(doc.Connections, ConnectionEntry{From: int(st.ID), To: int(c.To), Time: c.Time})
		}
	}

	return doc
}

// Encode writes m to w as YAML. Decode(Encode(m)) rebuilds an equivalent map.
func Encode(w io.Writer, m *core.Map) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(Snapshot(m)); err != nil {
		return fmt.Errorf("mapfile: encode: %w", err)
	}

	return enc.Close()
}

// Package seed reads the location catalog from CSV, locally or from a blob bucket.
package seed

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"

	"arches/internal/domain/entity"
)

const maxAddressLength = 100

// ReadLocations parses a catalog CSV.
// Expected CSV format: [id,]address,longitude,latitude with a header row naming the columns.
// When the id column is absent, IDs are assigned from 1 in row order.
func ReadLocations(r io.Reader) ([]*entity.Location, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, errors.Wrap(err, "read header")
	}

	cols, err := parseHeader(header)
	if err != nil {
		return nil, err
	}

	var locations []*entity.Location
	lineNum := 1 // Start at 1 because we read the header

	for {
		record, readErr := reader.Read()
		if errors.Is(readErr, io.EOF) {
			break
		}
		if readErr != nil {
			return nil, errors.WithStack(readErr)
		}
		lineNum++

		loc, parseErr := parseLocation(record, cols, lineNum)
		if parseErr != nil {
			return nil, parseErr
		}
		if cols.id < 0 {
			loc.ID = int64(len(locations) + 1)
		}

		locations = append(locations, loc)
	}

	return locations, nil
}

type columns struct {
	id        int
	address   int
	longitude int
	latitude  int
}

func parseHeader(header []string) (columns, error) {
	cols := columns{id: -1, address: -1, longitude: -1, latitude: -1}

	for idx, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "id":
			cols.id = idx
		case "address":
			cols.address = idx
		case "longitude", "lon", "lng", "x":
			cols.longitude = idx
		case "latitude", "lat", "y":
			cols.latitude = idx
		}
	}

	if cols.address < 0 || cols.longitude < 0 || cols.latitude < 0 {
		return cols, errors.Errorf("csv header %v must name address, longitude and latitude columns", header)
	}

	return cols, nil
}

func parseLocation(record []string, cols columns, lineNum int) (*entity.Location, error) {
	need := max(cols.id, cols.address, cols.longitude, cols.latitude) + 1
	if len(record) < need {
		return nil, errors.Errorf("line %d: expected %d columns, got %d", lineNum, need, len(record))
	}

	address := strings.TrimSpace(record[cols.address])
	if address == "" || len(address) > maxAddressLength {
		return nil, errors.Errorf("line %d: address must be 1-%d characters", lineNum, maxAddressLength)
	}

	lng, err := strconv.ParseFloat(strings.TrimSpace(record[cols.longitude]), 64)
	if err != nil {
		return nil, errors.Wrapf(err, "line %d: invalid longitude", lineNum)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(record[cols.latitude]), 64)
	if err != nil {
		return nil, errors.Wrapf(err, "line %d: invalid latitude", lineNum)
	}

	coord := entity.NewCoordinate(lng, lat)
	if err := coord.Validate(); err != nil {
		return nil, errors.Wrapf(err, "line %d", lineNum)
	}

	loc := &entity.Location{Address: address, Point: orb.Point{lng, lat}}

	if cols.id >= 0 {
		id, err := strconv.ParseInt(strings.TrimSpace(record[cols.id]), 10, 64)
		if err != nil || id <= 0 {
			return nil, errors.Errorf("line %d: invalid id %q", lineNum, record[cols.id])
		}
		loc.ID = id
	}

	return loc, nil
}

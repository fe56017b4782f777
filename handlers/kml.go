package handlers

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"p9e.in/treeflow/logging"
	"p9e.in/treeflow/models"
	"p9e.in/treeflow/pkg/apperr"
)

const kmlNamespace = "http://www.opengis.net/kml/2.2"

// KML types, limited to what a point layer needs.
type kmlPoint struct {
	Coordinates string `xml:"coordinates"`
}

type kmlData struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value"`
}

type kmlExtendedData struct {
	Data []kmlData `xml:"Data"`
}

type kmlPlacemark struct {
	ID           string           `xml:"id,attr"`
	Name         string           `xml:"name"`
	Description  string           `xml:"description,omitempty"`
	ExtendedData *kmlExtendedData `xml:"ExtendedData,omitempty"`
	Point        kmlPoint         `xml:"Point"`
}

type kmlDocument struct {
	Name       string         `xml:"name"`
	Placemarks []kmlPlacemark `xml:"Placemark"`
}

type kmlRoot struct {
	XMLName  xml.Name    `xml:"kml"`
	Xmlns    string      `xml:"xmlns,attr"`
	Document kmlDocument `xml:"Document"`
}

// CensusTreesKMZ downloads the mapped census trees as a KMZ archive for
// Google Earth. It honours the same filters as the GeoJSON layer.
// @Summary      Census trees as KMZ
// @Tags         arboles
// @Produce      application/vnd.google-earth.kmz
// @Param        area  query  string  false  "Polygon"
// @Success      200  {file}  file
// @Router       /api/arboles-censados/kmz [get]
func (h *Handler) CensusTreesKMZ(w http.ResponseWriter, r *http.Request) {
	rows, err := h.loadMappedCensusTrees(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	data, err := buildKMZ("Árboles censados", censusTreePlacemarks(rows))
	if err != nil {
		respondError(w, r, apperr.Database("No se pudo generar el KMZ", err))
		return
	}

	filename := fmt.Sprintf("arboles_censados_%s.kmz", time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "application/vnd.google-earth.kmz")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		logging.Ctx(r.Context()).Warn().Err(err).Msg("write kmz")
	}
}

func censusTreePlacemarks(rows []models.CensusTreeRow) []kmlPlacemark {
	out := make([]kmlPlacemark, 0, len(rows))
	for _, row := range rows {
		pm := kmlPlacemark{
			ID:          "arbol-" + strconv.FormatInt(row.ArbolID, 10),
			Name:        fmt.Sprintf("Árbol %d", row.ArbolID),
			Description: fmt.Sprintf("%v %d", opt(row.Calle), row.Altura),
			Point: kmlPoint{
				// KML orders coordinates lon,lat[,alt]
				Coordinates: strconv.FormatFloat(*row.Longitud, 'f', -1, 64) + "," +
					strconv.FormatFloat(*row.Latitud, 'f', -1, 64),
			},
		}

		ext := &kmlExtendedData{}
		add := func(name string, v interface{}) {
			if s := fmt.Sprint(v); s != "" {
				ext.Data = append(ext.Data, kmlData{Name: name, Value: s})
			}
		}
		add("comuna", opt(row.Comuna))
		add("especie", opt(row.Especie))
		add("estado_fitosanitario", opt(row.EstadoFitosanitario))
		add("fase_vital", opt(row.FaseVital))
		add("fecha_censado", optDate(row.FechaCensado))
		if len(ext.Data) > 0 {
			pm.ExtendedData = ext
		}
		out = append(out, pm)
	}
	return out
}

// buildKMZ zips a single doc.kml.
func buildKMZ(name string, placemarks []kmlPlacemark) ([]byte, error) {
	doc, err := xml.MarshalIndent(kmlRoot{
		Xmlns:    kmlNamespace,
		Document: kmlDocument{Name: name, Placemarks: placemarks},
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode KML: %w", err)
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, err := zw.Create("doc.kml")
	if err != nil {
		return nil, fmt.Errorf("failed to create KMZ entry: %w", err)
	}
	if _, err := f.Write([]byte(xml.Header)); err != nil {
		return nil, err
	}
	if _, err := f.Write(doc); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to close KMZ archive: %w", err)
	}
	return buf.Bytes(), nil
}

package geocoding

// responseEnvelope is the top-level Geocoding API response.
type responseEnvelope struct {
	Results      []Result `json:"results"`
	Status       string   `json:"status"`
	ErrorMessage string   `json:"error_message,omitempty"`
}

// Result is a single geocoding match, passed through to clients
// unmodified.
type Result struct {
	FormattedAddress  string             `json:"formatted_address"`
	Geometry          Geometry           `json:"geometry"`
	PlaceID           string             `json:"place_id"`
	Types             []string           `json:"types"`
	AddressComponents []AddressComponent `json:"address_components"`
	PartialMatch      bool               `json:"partial_match,omitempty"`
}

type Geometry struct {
	Location     LatLng    `json:"location"`
	LocationType string    `json:"location_type"`
	Viewport     *Viewport `json:"viewport,omitempty"`
}

type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Viewport struct {
	Northeast LatLng `json:"northeast"`
	Southwest LatLng `json:"southwest"`
}

type AddressComponent struct {
	LongName  string   `json:"long_name"`
	ShortName string   `json:"short_name"`
	Types     []string `json:"types"`
}

package entities

// Province is the top level of the location reference hierarchy.
type Province struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// District belongs to a province; its wards are fetched lazily.
type District struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	ProvinceID int    `json:"provinceId"`
}

// Ward is identified by a code rather than a numeric id.
type Ward struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	DistrictID int    `json:"districtId"`
}

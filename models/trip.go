package models

// TripType категория поездки, определяет категорию тарифа у страховщика
type TripType string

const (
	TripTypeSingle  TripType = "single"
	TripTypeMulti   TripType = "multi"
	TripTypeStudent TripType = "student"
	TripTypeSpecial TripType = "special"
)

// DurationMode максимальная длительность покрытия
type DurationMode string

const (
	DurationUpto180 DurationMode = "upto180"
	DurationUpto365 DurationMode = "upto365"
)

// Country справочник стран назначения
type Country struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Region string `json:"region"`
}

// Region справочник регионов покрытия
type Region struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

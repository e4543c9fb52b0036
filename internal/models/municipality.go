package models

import "time"

// City mirrors a row of cities.
type City struct {
	ID        int64  `db:"id"`
	Name      string `db:"name"`
	StateName string `db:"state_name"`
	StateCode string `db:"state_code"`
}

// Municipality is a municipalities row joined with its city.
type Municipality struct {
	ID             int64      `db:"id"`
	CityID         int64      `db:"city_id"`
	PoliticalParty string     `db:"political_party"`
	MayorName      string     `db:"mayor_name"`
	Office         string     `db:"office"`
	Emails         string     `db:"emails"`
	Phone          string     `db:"phone"`
	TermStart      *time.Time `db:"term_start"`
	TermEnd        *time.Time `db:"term_end"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
	CityName       string     `db:"city_name"`
	CityStateName  string     `db:"city_state_name"`
	CityStateCode  string     `db:"city_state_code"`
}

package entity

type PackageType struct {
	BaseNoDelete
	Name             string `db:"name"`
	DurationInMonths int    `db:"duration_in_months"`
}

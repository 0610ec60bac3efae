package dto

type ProgressInput struct {
	Range string
}

type ProgressOutput struct {
	Range     string
	Current   int
	Target    int
	Percent   float64
	Clamped   float64
	GoalType  string
	GoalValue int
}

type SeriesInput struct {
	Range string
}

type PointOutput struct {
	Label string
	Count int
}

type SeriesOutput struct {
	Range  string
	Points []PointOutput
	Max    int
	Total  int
}

type SummaryOutput struct {
	ChantName      string
	TodayCounts    int
	TodayMalas     string
	LifetimeCounts int
	LifetimeMalas  string
	Daily          ProgressOutput
}

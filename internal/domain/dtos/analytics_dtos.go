package dtos

// PatientStats are the headline numbers of the analytics dashboard.
type PatientStats struct {
	TotalPatients      int `json:"total_patients"`
	ActiveToday        int `json:"active_today"`
	TotalConsultations int `json:"total_consultations"`
	TotalAnalyses      int `json:"total_analyses"`
}

// TrendPoint is one day of activity. Date is formatted as YYYY-MM-DD.
type TrendPoint struct {
	Date              string `json:"date"`
	ConsultationCount int    `json:"consultations"`
	AnalysisCount     int    `json:"ai_analyses"`
}

// AgeBucket counts patients whose age falls in [Min, Max].
type AgeBucket struct {
	Label string `json:"label"`
	Min   int    `json:"min"`
	Max   int    `json:"max"`
	Count int    `json:"count"`
}

package stats

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type Dashboard struct {
	TotalClients      int64         `json:"totalClients"`
	TotalProcesses    int64         `json:"totalProcesses"`
	TotalHearings     int64         `json:"totalHearings"`
	ProcessesByStatus []StatusCount `json:"processesByStatus"`
	HearingsByStatus  []StatusCount `json:"hearingsByStatus"`
}

package dto

type UpsertActualRequest struct {
	HotelID uint   `json:"hotelId" binding:"required"`
	Date    string `json:"date" binding:"required"`

	RevenueTY    *float64 `json:"revenueTy"`
	RoomNightsTY *int     `json:"roomNightsTy"`
	ADRTY        *float64 `json:"adrTy"`

	STLYRevenue    *float64 `json:"stlyRevenue"`
	STLYRoomNights *int     `json:"stlyRoomNights"`
	STLYADR        *float64 `json:"stlyAdr"`

	ResultsLYRevenue    *float64 `json:"resultsLyRevenue"`
	ResultsLYRoomNights *int     `json:"resultsLyRoomNights"`
	ResultsLYADR        *float64 `json:"resultsLyAdr"`
}

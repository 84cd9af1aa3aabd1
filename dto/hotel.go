package dto

type CreateHotelRequest struct {
	Code        string `json:"code" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Address     string `json:"address"`
	City        string `json:"city"`
	Country     string `json:"country"`
	StarRating  int    `json:"starRating"`
	TotalRooms  int    `json:"totalRooms" binding:"required"`
}

type UpdateHotelRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Address     *string `json:"address"`
	City        *string `json:"city"`
	Country     *string `json:"country"`
	StarRating  *int    `json:"starRating"`
	TotalRooms  *int    `json:"totalRooms"`
	Status      *string `json:"status"`
}

type AssignHotelRequest struct {
	UserID uint   `json:"userId" binding:"required"`
	Role   string `json:"role"`
}

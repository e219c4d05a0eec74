package dto

// ToggleLikeData 点赞切换结果
type ToggleLikeData struct {
	Liked      bool  `json:"liked"`
	LikesCount int64 `json:"likesCount"`
}

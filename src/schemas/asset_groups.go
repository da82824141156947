package schemas

import "github.com/shopspring/decimal"

type AssetGroupRequest struct {
	GroupName   string `json:"groupName"`
	Description string `json:"description"`
}

type AssetGroupMemberRequest struct {
	GroupIDs []int64 `json:"groupIds"`
}

type AssetGroupResponse struct {
	GroupID     int64           `json:"groupId"`
	GroupName   string          `json:"groupName"`
	Description string          `json:"description"`
	CreatedDate string          `json:"createdDate"`
	AssetCount  int             `json:"assetCount"`
	Assets      []AssetResponse `json:"assets"`
}

type AssetGroupPerformanceResponse struct {
	GroupID          int64           `json:"groupId"`
	GroupName        string          `json:"groupName"`
	HoldingCount     int             `json:"holdingCount"`
	TotalInvested    decimal.Decimal `json:"totalInvested"`
	CurrentValue     decimal.Decimal `json:"currentValue"`
	AbsoluteReturn   decimal.Decimal `json:"absoluteReturn"`
	PercentageReturn decimal.Decimal `json:"percentageReturn"`
}

package domain

var (
	MessageSuccessGetUsers          = "users retrieved successfully"
	MessageSuccessUpdateUserAdmin   = "user updated successfully"
	MessageSuccessDeleteUser        = "user deleted successfully"
	MessageSuccessCreateReward      = "reward created successfully"
	MessageSuccessUpdateReward      = "reward updated successfully"
	MessageSuccessDeleteReward      = "reward deleted successfully"
	MessageSuccessUploadRewardImage = "reward image uploaded successfully"
	MessageSuccessCreateMilestone   = "milestone created successfully"
	MessageSuccessUpdateMilestone   = "milestone updated successfully"
	MessageSuccessDeleteMilestone   = "milestone deleted successfully"
	MessageSuccessGetAllTx          = "transactions retrieved successfully"
	MessageSuccessGetAllRedemptions = "redemptions retrieved successfully"
	MessageSuccessAddPoints         = "points added successfully"
	MessageSuccessGetStats          = "dashboard stats retrieved successfully"

	MessageFailedGetUsers          = "failed to retrieve users"
	MessageFailedUpdateUserAdmin   = "failed to update user"
	MessageFailedDeleteUser        = "failed to delete user"
	MessageFailedCreateReward      = "failed to create reward"
	MessageFailedUpdateReward      = "failed to update reward"
	MessageFailedDeleteReward      = "failed to delete reward"
	MessageFailedUploadRewardImage = "failed to upload reward image"
	MessageFailedCreateMilestone   = "failed to create milestone"
	MessageFailedUpdateMilestone   = "failed to update milestone"
	MessageFailedDeleteMilestone   = "failed to delete milestone"
	MessageFailedGetAllTx          = "failed to retrieve transactions"
	MessageFailedGetAllRedemptions = "failed to retrieve redemptions"
	MessageFailedAddPoints         = "failed to add points"
	MessageFailedGetStats          = "failed to retrieve dashboard stats"
)

type (
	AdminUpdateUserRequest struct {
		Email       string `json:"email" validate:"omitempty,email"`
		FullName    string `json:"full_name" validate:"omitempty"`
		Phone       string `json:"phone" validate:"omitempty,min=9,max=15"`
		Points      *int   `json:"points" validate:"omitempty,min=0"`
		MemberLevel string `json:"member_level" validate:"omitempty,oneof=bronze silver gold platinum"`
	}

	CreateRewardRequest struct {
		Name           string `json:"name" validate:"required"`
		Description    string `json:"description" validate:"required"`
		PointsRequired int    `json:"points_required" validate:"min=0"`
		Category       string `json:"category" validate:"required,oneof=discount product voucher"`
		IsActive       *bool  `json:"is_active"`
	}

	UpdateRewardRequest struct {
		Name           string `json:"name" validate:"omitempty"`
		Description    string `json:"description" validate:"omitempty"`
		PointsRequired *int   `json:"points_required" validate:"omitempty,min=0"`
		Category       string `json:"category" validate:"omitempty,oneof=discount product voucher"`
		IsActive       *bool  `json:"is_active"`
	}

	CreateMilestoneRequest struct {
		PointsRequired    int    `json:"points_required" validate:"min=0"`
		RewardTitle       string `json:"reward_title" validate:"required"`
		RewardDescription string `json:"reward_description" validate:"required"`
		IsActive          *bool  `json:"is_active"`
	}

	UpdateMilestoneRequest struct {
		PointsRequired    *int   `json:"points_required" validate:"omitempty,min=0"`
		RewardTitle       string `json:"reward_title" validate:"omitempty"`
		RewardDescription string `json:"reward_description" validate:"omitempty"`
		IsActive          *bool  `json:"is_active"`
	}

	// Points is a pointer so an explicit zero grant survives the
	// required check; absent means invalid.
	AddPointsRequest struct {
		UserID      string `json:"user_id" validate:"required,uuid"`
		Points      *int   `json:"points" validate:"required"`
		Description string `json:"description" validate:"required"`
	}

	AdminTransactionResponse struct {
		TransactionResponse
		UserEmail    string `json:"user_email"`
		UserFullName string `json:"user_full_name"`
	}

	AdminRedemptionResponse struct {
		RedemptionResponse
		UserEmail    string `json:"user_email"`
		UserFullName string `json:"user_full_name"`
	}

	DashboardStatsResponse struct {
		TotalUsers        int64 `json:"total_users"`
		TotalPoints       int64 `json:"total_points"`
		TotalRedemptions  int64 `json:"total_redemptions"`
		ActiveRewards     int64 `json:"active_rewards"`
		NewUsersToday     int64 `json:"new_users_today"`
		PointsIssuedToday int64 `json:"points_issued_today"`
	}
)

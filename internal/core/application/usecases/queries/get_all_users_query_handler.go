package queries

import (
	"context"

	"ordering/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllUsersQueryHandler lists registered users directly from the database.
type GetAllUsersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllUsersQueryHandler creates a handler for user listing queries.
func NewGetAllUsersQueryHandler(db *gorm.DB) GetAllUsersQueryHandler {
	return GetAllUsersQueryHandler{db: db}
}

// Handle executes the query to retrieve all users.
// Results are sorted by username for consistent output.
func (h GetAllUsersQueryHandler) Handle(
	ctx context.Context,
	query GetAllUsersQuery,
) ([]GetAllUsersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	users := make([]GetAllUsersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			username
		FROM users
		ORDER BY username
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			userResp GetAllUsersQueryResponse
			id       uuid.UUID
		)

		err = rows.Scan(&id, &userResp.Username)
		if err != nil {
			return nil, err
		}

		userID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		userResp.ID = userID
		users = append(users, userResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

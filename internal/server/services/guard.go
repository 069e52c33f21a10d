package services

import (
	"github.com/dmitrijs2005/todokeeper/internal/common"
	"github.com/dmitrijs2005/todokeeper/internal/server/models"
)

// Authorize allows p to touch todo only if p created it. A refusal is
// reported as common.ErrorNotFound so callers cannot probe for other users'
// records.
func Authorize(p *Principal, todo *models.Todo) error {
	if p == nil || p.User == nil || todo == nil || todo.CreatorID != p.User.ID {
		return common.ErrorNotFound
	}
	return nil
}

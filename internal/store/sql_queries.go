package store

import (
	sq "github.com/Masterminds/squirrel"

	"feedback-board/models"
)

// psql is the shared squirrel builder configured for PostgreSQL-style
// $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func buildCreateUser(user models.User) (string, []any, error) {
	return psql.Insert("users").
		Columns("username", "password_hash").
		Values(user.Username, user.PasswordHash).
		Suffix("RETURNING user_id, username, password_hash, created_at").
		ToSql()
}

func buildFindUserByUsername(username string) (string, []any, error) {
	return psql.Select("user_id", "username", "password_hash", "created_at").
		From("users").
		Where(sq.Eq{"username": username}).
		ToSql()
}

func buildCreateFeedback(feedback models.Feedback) (string, []any, error) {
	return psql.Insert("feedbacks").
		Columns("user_id", "rating", "note").
		Values(feedback.UserID, feedback.Rating, feedback.Note).
		Suffix("RETURNING feedback_id, user_id, rating, note, created_at").
		ToSql()
}

func buildGetFeedback(feedbackID int64) (string, []any, error) {
	return psql.Select("f.feedback_id", "f.user_id", "u.username", "f.rating", "f.note", "f.created_at").
		From("feedbacks f").
		Join("users u ON u.user_id = f.user_id").
		Where(sq.Eq{"f.feedback_id": feedbackID}).
		ToSql()
}

func buildGetAllFeedbacks() (string, []any, error) {
	return psql.Select("f.feedback_id", "f.user_id", "u.username", "f.rating", "f.note", "f.created_at").
		From("feedbacks f").
		Join("users u ON u.user_id = f.user_id").
		OrderBy("f.feedback_id").
		ToSql()
}

func buildCreateComment(comment models.Comment) (string, []any, error) {
	return psql.Insert("comments").
		Columns("user_id", "feedback_id", "content").
		Values(comment.UserID, comment.FeedbackID, comment.Content).
		Suffix("RETURNING comment_id, user_id, feedback_id, content, created_at").
		ToSql()
}

func buildGetComment(commentID int64) (string, []any, error) {
	return psql.Select("c.comment_id", "c.user_id", "u.username", "c.feedback_id", "c.content", "c.created_at").
		From("comments c").
		Join("users u ON u.user_id = c.user_id").
		Where(sq.Eq{"c.comment_id": commentID}).
		ToSql()
}

func buildGetFeedbackComments(feedbackID int64) (string, []any, error) {
	return psql.Select("c.comment_id", "c.user_id", "u.username", "c.feedback_id", "c.content", "c.created_at").
		From("comments c").
		Join("users u ON u.user_id = c.user_id").
		Where(sq.Eq{"c.feedback_id": feedbackID}).
		OrderBy("c.comment_id").
		ToSql()
}

func buildCreateNotation(notation models.Notation) (string, []any, error) {
	return psql.Insert("notations").
		Columns("user_id", "owner_kind", "owner_id", "value").
		Values(notation.UserID, notation.OwnerKind, notation.OwnerID, notation.Value).
		Suffix("RETURNING notation_id, user_id, owner_kind, owner_id, value, created_at, updated_at").
		ToSql()
}

func buildUpdateNotationValue(notation models.Notation) (string, []any, error) {
	return psql.Update("notations").
		Set("value", notation.Value).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{
			"user_id":    notation.UserID,
			"owner_kind": notation.OwnerKind,
			"owner_id":   notation.OwnerID,
		}).
		Suffix("RETURNING notation_id, user_id, owner_kind, owner_id, value, created_at, updated_at").
		ToSql()
}

func buildGetOwnerNotations(kind models.NotationKind, ownerID int64) (string, []any, error) {
	return psql.Select("notation_id", "user_id", "owner_kind", "owner_id", "value", "created_at", "updated_at").
		From("notations").
		Where(sq.Eq{
			"owner_kind": kind.Name(),
			"owner_id":   ownerID,
		}).
		ToSql()
}

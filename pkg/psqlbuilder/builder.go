package psqlbuilder

import "github.com/Masterminds/squirrel"

// builder squirrel билдер с PostgreSQL-плейсхолдерами ($1, $2, ...)
var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Select создает SELECT запрос с PostgreSQL-плейсхолдерами
// Сервис только читает данные расписания, запросы на запись не строятся
func Select(columns ...string) squirrel.SelectBuilder {
	return builder.Select(columns...)
}

package validation

import (
	"database/sql"
	"errors"
)

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// deactivateStatements finds every active master record for the same person
// (institution + formatted name + date of birth) and returns the UPDATE
// statements that supersede them. The updates are deferred like the insert;
// executing them before it keeps the at-most-one-active invariant.
func deactivateStatements(q RowQuerier, masterTable, institutionCode, studentName, dateOfBirth string) ([]Statement, error) {
	rows, err := q.Query(
		"SELECT master_id FROM "+masterTable+" WHERE institution_code = $1 AND student_name = $2 AND date_of_birth = $3 AND is_active = TRUE",
		institutionCode, studentName, dateOfBirth,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var statements []Statement
	for rows.Next() {
		var masterID int64
		if err := rows.Scan(&masterID); err != nil {
			return nil, err
		}
		statements = append(statements, Statement{
			Query: "UPDATE " + masterTable + " SET is_active = FALSE WHERE master_id = $1",
			Args:  []any{masterID},
		})
	}
	return statements, rows.Err()
}

package data

import (
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/clearsig/clarity/pkg/analysis"
)

const (
	listSeparator = "|"

	insertAnalysisSQL = `INSERT INTO analysis (
			id, created, statement, restatement, clarity, entropy, snr,
			amplification, metaphor_count, metaphors, noise_types, tone,
			needs_restatement
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`

	selectAnalysisSQL = `SELECT
			id, created, statement, restatement, clarity, entropy, snr,
			amplification, metaphor_count, metaphors, noise_types, tone,
			needs_restatement
		FROM analysis
	`

	searchAnalysesSQL = selectAnalysisSQL + `
		WHERE (statement LIKE COALESCE(?, statement) OR restatement LIKE COALESCE(?, ''))
		AND created >= COALESCE(?, created)
		AND clarity >= COALESCE(?, clarity)
		AND clarity <= COALESCE(?, clarity)
		AND metaphors LIKE COALESCE(?, metaphors)
		ORDER BY created DESC, id
		LIMIT ? OFFSET ?
	`

	getAnalysisSQL = selectAnalysisSQL + `WHERE id = ?`

	pruneAnalysesSQL = `DELETE FROM analysis WHERE created < ?`
)

// AnalysisRecord is a single row of the append-only analysis log.
type AnalysisRecord struct {
	ID               string   `json:"id" yaml:"id"`
	Created          string   `json:"created" yaml:"created"`
	Statement        string   `json:"statement" yaml:"statement"`
	Restatement      string   `json:"restatement,omitempty" yaml:"restatement,omitempty"`
	Clarity          float64  `json:"clarity" yaml:"clarity"`
	Entropy          float64  `json:"entropy" yaml:"entropy"`
	SNR              float64  `json:"snr" yaml:"snr"`
	Amplification    float64  `json:"amplification" yaml:"amplification"`
	MetaphorCount    int      `json:"metaphor_count" yaml:"metaphor_count"`
	Metaphors        []string `json:"metaphors,omitempty" yaml:"metaphors,omitempty"`
	NoiseTypes       []string `json:"noise_types,omitempty" yaml:"noise_types,omitempty"`
	Tone             string   `json:"tone,omitempty" yaml:"tone,omitempty"`
	NeedsRestatement bool     `json:"needs_restatement" yaml:"needs_restatement"`
}

// SaveReport appends an analysis report to the log. Saving the same report
// twice is a no-op.
func SaveReport(db *sql.DB, r *analysis.Report) error {
	if r == nil {
		return errors.New("report required")
	}
	return SaveReports(db, []*analysis.Report{r})
}

// SaveReports appends reports in a single transaction.
func SaveReports(db *sql.DB, reports []*analysis.Report) error {
	if db == nil {
		return errDBNotInitialized
	}

	stmt, err := db.Prepare(insertAnalysisSQL)
	if err != nil {
		return errors.Wrap(err, "failed to prepare analysis insert statement")
	}
	defer stmt.Close()

	tx, err := db.Begin()
	if err != nil {
		return errors.Wrap(err, "failed to begin transaction")
	}

	for _, r := range reports {
		if r == nil {
			continue
		}
		_, err = tx.Stmt(stmt).Exec(recordArgs(r)...)
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				return errors.Wrap(rbErr, "failed to rollback transaction")
			}
			return errors.Wrap(err, "failed to insert analysis batch")
		}
	}

	if err = tx.Commit(); err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}
	return nil
}

func recordArgs(r *analysis.Report) []any {
	return []any{
		r.ID,
		r.Created.UTC().Format(time.RFC3339),
		r.Statement,
		r.Restatement,
		r.Entropy.Clarity,
		r.Entropy.Total,
		r.Noise.SNR,
		r.Entropy.Amplification,
		r.Entropy.MetaphorCount,
		joinList(r.MetaphorNames()),
		joinList(r.Noise.NoiseTypes),
		r.Tone.Dominant,
		r.NeedsRestatement,
	}
}

// AnalysisSearchCriteria narrows a history query. Nil fields are not
// applied.
type AnalysisSearchCriteria struct {
	Like       *string  `json:"like,omitempty"`
	Since      *string  `json:"since,omitempty"`
	MinClarity *float64 `json:"min_clarity,omitempty"`
	MaxClarity *float64 `json:"max_clarity,omitempty"`
	Metaphor   *string  `json:"metaphor,omitempty"`
	Limit      int      `json:"limit,omitempty"`
	Offset     int      `json:"offset,omitempty"`
}

func (c *AnalysisSearchCriteria) String() string {
	b, err := json.Marshal(c)
	if err != nil {
		return err.Error()
	}
	return string(b)
}

// SearchAnalyses queries the log, newest first.
func SearchAnalyses(db *sql.DB, c *AnalysisSearchCriteria) ([]*AnalysisRecord, error) {
	if db == nil {
		return nil, errDBNotInitialized
	}
	if c == nil {
		return nil, errors.New("criteria required")
	}

	limit := c.Limit
	if limit <= 0 {
		limit = 100
	}

	stmt, err := db.Prepare(searchAnalysesSQL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to prepare analysis search statement")
	}
	defer stmt.Close()

	rows, err := stmt.Query(
		likeParam(c.Like),
		likeParam(c.Like),
		c.Since,
		c.MinClarity,
		c.MaxClarity,
		likeParam(c.Metaphor),
		limit,
		c.Offset,
	)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to query analyses: %s", c)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// GetAnalysis returns the record with the given id, or nil when not found.
func GetAnalysis(db *sql.DB, id string) (*AnalysisRecord, error) {
	if db == nil {
		return nil, errDBNotInitialized
	}
	if id == "" {
		return nil, errors.New("id required")
	}

	row := db.QueryRow(getAnalysisSQL, id)
	r, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "failed to get analysis: %s", id)
	}
	return r, nil
}

// PruneAnalyses deletes records created before the given time and returns
// the number of rows removed.
func PruneAnalyses(db *sql.DB, before string) (int64, error) {
	if db == nil {
		return 0, errDBNotInitialized
	}
	if before == "" {
		return 0, errors.New("before date required")
	}

	res, err := db.Exec(pruneAnalysesSQL, before)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to prune analyses before: %s", before)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, errors.Wrap(err, "failed to read pruned row count")
	}
	return n, nil
}

// DataState summarizes the history log.
type DataState struct {
	Analyses   int     `json:"analyses" yaml:"analyses"`
	AvgClarity float64 `json:"avg_clarity" yaml:"avg_clarity"`
	MinClarity float64 `json:"min_clarity" yaml:"min_clarity"`
	MaxClarity float64 `json:"max_clarity" yaml:"max_clarity"`
	Oldest     string  `json:"oldest,omitempty" yaml:"oldest,omitempty"`
	Newest     string  `json:"newest,omitempty" yaml:"newest,omitempty"`
}

// GetDataState returns the current state of the log.
func GetDataState(db *sql.DB) (*DataState, error) {
	if db == nil {
		return nil, errDBNotInitialized
	}

	row := db.QueryRow(`SELECT
			COUNT(*),
			COALESCE(AVG(clarity), 0),
			COALESCE(MIN(clarity), 0),
			COALESCE(MAX(clarity), 0),
			COALESCE(MIN(created), ''),
			COALESCE(MAX(created), '')
		FROM analysis`)

	s := &DataState{}
	if err := row.Scan(&s.Analyses, &s.AvgClarity, &s.MinClarity, &s.MaxClarity, &s.Oldest, &s.Newest); err != nil {
		return nil, errors.Wrap(err, "failed to scan data state")
	}
	return s, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (*AnalysisRecord, error) {
	r := &AnalysisRecord{}
	var metaphors, noiseTypes string
	err := row.Scan(
		&r.ID,
		&r.Created,
		&r.Statement,
		&r.Restatement,
		&r.Clarity,
		&r.Entropy,
		&r.SNR,
		&r.Amplification,
		&r.MetaphorCount,
		&metaphors,
		&noiseTypes,
		&r.Tone,
		&r.NeedsRestatement,
	)
	if err != nil {
		return nil, err
	}
	r.Metaphors = splitList(metaphors)
	r.NoiseTypes = splitList(noiseTypes)
	return r, nil
}

func scanRecords(rows *sql.Rows) ([]*AnalysisRecord, error) {
	list := make([]*AnalysisRecord, 0)
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, errors.Wrap(err, "failed to scan analysis row")
		}
		list = append(list, r)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate analysis rows")
	}
	return list, nil
}

func likeParam(v *string) *string {
	if v == nil || *v == "" {
		return nil
	}
	s := "%" + *v + "%"
	return &s
}

func joinList(list []string) string {
	return strings.Join(list, listSeparator)
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, listSeparator)
}

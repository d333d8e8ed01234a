package database

import (
	"database/sql"

	"github.com/sirupsen/logrus"
)

// RunMigrations creates the schema on first boot and is a no-op afterwards.
// Statements run in declaration order so foreign keys and seed data always
// find their targets; each one is idempotent so restarts are safe.
func RunMigrations(db *sql.DB) error {
	logrus.Info("running database migrations...")

	for _, m := range migrations {
		if _, err := db.Exec(m.query); err != nil {
			logrus.WithError(err).Errorf("migration %s failed", m.name)
			return err
		}
	}

	logrus.Info("database migrations completed successfully")
	return nil
}

var migrations = []struct {
	name  string
	query string
}{
	{"institutions", `
		CREATE TABLE IF NOT EXISTS institutions (
			institution_code TEXT PRIMARY KEY,
			institute_name   TEXT NOT NULL
		)`},

	{"seed_institutions", `
		INSERT INTO institutions (institution_code, institute_name) VALUES
			('SDCCE', 'Shree Damodar College of Commerce and Economics'),
			('GRKCL', 'G.R. Kare College of Law'),
			('RMS', 'R.M. Salgaocar Higher Secondary School'),
			('VVA', 'Vidya Vikas Academy')
		ON CONFLICT (institution_code) DO NOTHING`},

	{"user_upload_details", `
		CREATE TABLE IF NOT EXISTS user_upload_details (
			upload_id        BIGSERIAL PRIMARY KEY,
			institution_code TEXT NOT NULL,
			file_name        TEXT NOT NULL,
			table_type       TEXT NOT NULL,
			academic_year    TEXT NOT NULL DEFAULT '-',
			academic_quarter TEXT NOT NULL DEFAULT '-',
			uploaded_at      TIMESTAMPTZ NOT NULL DEFAULT now()
		)`},

	{"stg_sdcce_grkcl_student_details", `
		CREATE TABLE IF NOT EXISTS stg_sdcce_grkcl_student_details (
			stg_id BIGSERIAL PRIMARY KEY,
			uploaded_file_id BIGINT NOT NULL REFERENCES user_upload_details(upload_id) ON DELETE CASCADE,
			admission_transaction_number TEXT,
			form_number TEXT,
			admission_fee_paid_on TEXT,
			programme_name TEXT,
			name_of_the_applicant TEXT,
			gender TEXT,
			admission_category TEXT,
			dob_day TEXT,
			dob_month TEXT,
			dob_year TEXT,
			religion TEXT,
			blood_group TEXT,
			email TEXT,
			add_line_1 TEXT,
			add_line_2 TEXT,
			city TEXT,
			other_city TEXT,
			state TEXT,
			other_state TEXT,
			pincode TEXT,
			mobile TEXT,
			alternate_mobile TEXT,
			father_mobile TEXT,
			mother_mobile TEXT,
			name_of_father TEXT,
			name_of_mother TEXT,
			father_occupation TEXT,
			mother_occupation TEXT,
			are_you_citizen_of_india TEXT,
			other_nationality TEXT,
			enrollment_number TEXT,
			xii_name_of_the_institution TEXT,
			xii_board TEXT,
			xii_passing_year TEXT,
			xii_stream TEXT,
			xii_maximum_marks TEXT,
			xii_marks_obtained TEXT,
			xii_subject_combination TEXT,
			xii_percentage TEXT,
			xii_division TEXT,
			urban_rural_semi_urban_metropolitan_area TEXT,
			pwd_category TEXT,
			pwd_category_other TEXT,
			pwd_percentage_of_disability TEXT
		)`},

	{"stg_rms_vva_student_details", `
		CREATE TABLE IF NOT EXISTS stg_rms_vva_student_details (
			stg_id BIGSERIAL PRIMARY KEY,
			uploaded_file_id BIGINT NOT NULL REFERENCES user_upload_details(upload_id) ON DELETE CASCADE,
			admission_no TEXT,
			admission_date TEXT,
			date_of_birth TEXT,
			student_name TEXT,
			gender TEXT,
			email TEXT,
			mobile TEXT,
			gen_reg_no TEXT,
			batch TEXT
		)`},

	{"stg_fees_details", `
		CREATE TABLE IF NOT EXISTS stg_fees_details (
			stg_id BIGSERIAL PRIMARY KEY,
			uploaded_file_id BIGINT NOT NULL REFERENCES user_upload_details(upload_id) ON DELETE CASCADE,
			institute TEXT,
			student TEXT,
			standard_course TEXT,
			branch TEXT,
			fees_id TEXT,
			fees_schedule_id TEXT,
			e_mail_address TEXT,
			mobile_number TEXT,
			division TEXT,
			registration_code TEXT,
			fee_head TEXT,
			due_date TEXT,
			fees_paid_date TEXT,
			settlement_date TEXT,
			refund_date TEXT,
			student_id TEXT,
			fees_amount TEXT,
			transaction_date TEXT
		)`},

	{"students_details_master", `
		CREATE TABLE IF NOT EXISTS students_details_master (
			master_id BIGSERIAL PRIMARY KEY,
			student_reference_id TEXT,
			institution_code TEXT NOT NULL,
			uploaded_file_id BIGINT,
			admission_no TEXT NOT NULL,
			stream TEXT,
			pr_no TEXT,
			admission_date DATE,
			admission_fee_payment_time TIME,
			student_name TEXT,
			date_of_birth DATE,
			full_address TEXT,
			gender TEXT,
			student_category TEXT,
			religion TEXT,
			blood_group TEXT,
			email_address TEXT,
			city TEXT,
			state TEXT,
			pin_code TEXT,
			mobile_number TEXT,
			alt_mobile_number TEXT,
			fathers_mobile_number TEXT,
			mothers_mobile_number TEXT,
			fathers_name TEXT,
			mothers_name TEXT,
			fathers_occupation TEXT,
			mothers_occupation TEXT,
			fathers_occupation_category TEXT,
			mothers_occupation_category TEXT,
			nationality TEXT,
			institution_attended_earlier TEXT,
			board_name TEXT,
			passing_year INT,
			xii_stream TEXT,
			xii_max_marks TEXT,
			xii_marks_obtained TEXT,
			xii_subject_combination TEXT,
			passing_percentage NUMERIC(5,2),
			xii_division TEXT,
			pwd_category_and_percentage TEXT,
			urban_rural_category TEXT,
			class TEXT,
			section TEXT,
			batch_year TEXT,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`},

	{"students_master_identity_idx", `
		CREATE INDEX IF NOT EXISTS idx_students_master_identity
		ON students_details_master (institution_code, student_name, date_of_birth)
		WHERE is_active`},

	{"student_fee_transactions", `
		CREATE TABLE IF NOT EXISTS student_fee_transactions (
			transaction_id BIGSERIAL PRIMARY KEY,
			uploaded_file_id BIGINT,
			institution_code TEXT NOT NULL,
			institute_name TEXT,
			student_name TEXT,
			course_name TEXT,
			branch_name TEXT,
			fees_id BIGINT,
			email_address TEXT,
			mobile_no TEXT,
			division_name TEXT,
			registration_code TEXT,
			installment_no TEXT,
			due_date DATE,
			student_id TEXT,
			fees_amount NUMERIC(12,2),
			transaction_date DATE,
			academic_year TEXT,
			academic_quarter TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`},
}

package commands

import (
	"fmt"
	"log"

	"workforce/backend/internal/pkg/repository/postgresql"

	"github.com/pkg/errors"
)

// ErrHelp provides context that help was given.
var ErrHelp = errors.New("provided help")

type Scheme struct {
	Index       int
	Description string
	Query       string
}

var scheme = []Scheme{
	{
		Index:       1,
		Description: "Create table: users.",
		Query: `
        CREATE TABLE IF NOT EXISTS users (
            id serial primary key,
            employee_id text not null,
            password text not null,
            role text not null,
            full_name text,
            phone text,
            active bool default true,
            created_at timestamp default now(),
            created_by int references users(id),
            updated_at timestamp,
            updated_by int references users(id),
            deleted_at timestamp,
            deleted_by int references users(id)
        );`,
	},
	{
		Index:       2,
		Description: "Create admin with employee_id: Admin01, password: 1",
		Query: `
        INSERT INTO users(employee_id, role, password)
        SELECT 'Admin01', 'ADMIN', '$2a$10$NKtnMwDPFSQLG6uOi4Zqheru5Ygbj9TWFHjpl478rRSaO5cJ9QuH2'
        WHERE NOT EXISTS (SELECT employee_id FROM users WHERE employee_id = 'Admin01');
        `,
	},
	{
		Index:       3,
		Description: "Create table: client_sites.",
		Query: `
        CREATE TABLE IF NOT EXISTS client_sites (
            id serial primary key,
            name text not null,
            client_name text,
            latitude numeric(10, 7) not null,
            longitude numeric(10, 7) not null,
            geo_radius_meters numeric(10, 2) not null default 100 check (geo_radius_meters > 0),
            created_at timestamp default now(),
            created_by int references users(id),
            updated_at timestamp,
            updated_by int references users(id),
            deleted_at timestamp,
            deleted_by int references users(id)
        );`,
	},
	{
		Index:       4,
		Description: "Create table: jobs.",
		Query: `
        CREATE TABLE IF NOT EXISTS jobs (
            id serial primary key,
            title text not null,
            category text,
            pay_type text not null,
            base_salary numeric(18, 2),
            hourly_rate numeric(18, 2),
            overtime_multiplier numeric(6, 2),
            tax_percent numeric(6, 2),
            late_penalty_amount numeric(18, 2),
            absent_penalty_amount numeric(18, 2),
            agency_fee_percent numeric(6, 2),
            active bool default true,
            created_at timestamp default now(),
            created_by int references users(id),
            updated_at timestamp,
            updated_by int references users(id),
            deleted_at timestamp,
            deleted_by int references users(id)
        );`,
	},
	{
		Index:       5,
		Description: "Create table: job_assignments.",
		Query: `
        CREATE TABLE IF NOT EXISTS job_assignments (
            id serial primary key,
            user_id int not null references users(id),
            job_id int not null references jobs(id),
            is_primary bool default false,
            base_salary numeric(18, 2),
            hourly_rate numeric(18, 2),
            overtime_multiplier numeric(6, 2),
            tax_percent numeric(6, 2),
            late_penalty_amount numeric(18, 2),
            absent_penalty_amount numeric(18, 2),
            agency_fee_percent numeric(6, 2),
            created_at timestamp default now(),
            created_by int references users(id),
            updated_at timestamp,
            updated_by int references users(id),
            deleted_at timestamp,
            deleted_by int references users(id),
            UNIQUE (user_id, job_id)
        );`,
	},
	{
		Index:       6,
		Description: "Create table: shift_schedules.",
		Query: `
        CREATE TABLE IF NOT EXISTS shift_schedules (
            id serial primary key,
            user_id int not null references users(id),
            site_id int not null references client_sites(id),
            job_id int not null references jobs(id),
            start_time timestamp not null,
            end_time timestamp not null,
            status text not null default 'SCHEDULED',
            is_overtime_shift bool default false,
            created_at timestamp default now(),
            created_by int references users(id),
            updated_at timestamp,
            updated_by int references users(id),
            deleted_at timestamp,
            deleted_by int references users(id)
        );`,
	},
	{
		Index:       7,
		Description: "Create table: attendance_logs.",
		Query: `
        CREATE TABLE IF NOT EXISTS attendance_logs (
            id serial primary key,
            schedule_id int not null references shift_schedules(id),
            user_id int not null references users(id),
            clock_in_time timestamp not null,
            clock_out_time timestamp,
            clock_in_latitude numeric(10, 7),
            clock_in_longitude numeric(10, 7),
            clock_out_latitude numeric(10, 7),
            clock_out_longitude numeric(10, 7),
            verification_method text not null default 'GPS',
            is_verified bool default false,
            verified_by int references users(id),
            flagged_late bool default false,
            distance_meters numeric(12, 2),
            created_at timestamp default now(),
            created_by int references users(id),
            updated_at timestamp,
            updated_by int references users(id),
            deleted_at timestamp,
            deleted_by int references users(id)
        );`,
	},
	{
		Index:       8,
		Description: "One open attendance log per schedule.",
		Query: `
        CREATE UNIQUE INDEX IF NOT EXISTS attendance_logs_open_schedule
        ON attendance_logs (schedule_id)
        WHERE clock_out_time IS NULL AND deleted_at IS NULL;`,
	},
	{
		Index:       9,
		Description: "Create table: payroll_periods.",
		Query: `
        CREATE TABLE IF NOT EXISTS payroll_periods (
            id serial primary key,
            start_date timestamp not null,
            end_date timestamp not null,
            status text not null default 'DRAFT',
            created_at timestamp default now(),
            created_by int references users(id),
            updated_at timestamp,
            updated_by int references users(id),
            deleted_at timestamp,
            deleted_by int references users(id)
        );`,
	},
	{
		Index:       10,
		Description: "Create table: penalties.",
		Query: `
        CREATE TABLE IF NOT EXISTS penalties (
            id serial primary key,
            user_id int not null references users(id),
            amount numeric(18, 2) not null,
            reason text,
            incurred_at timestamp not null default now(),
            status text not null default 'PENDING',
            payroll_period_id int references payroll_periods(id),
            created_at timestamp default now(),
            created_by int references users(id),
            updated_at timestamp,
            updated_by int references users(id),
            deleted_at timestamp,
            deleted_by int references users(id)
        );`,
	},
	{
		Index:       11,
		Description: "Create table: bonuses.",
		Query: `
        CREATE TABLE IF NOT EXISTS bonuses (
            id serial primary key,
            user_id int not null references users(id),
            amount numeric(18, 2) not null,
            reason text,
            incurred_at timestamp not null default now(),
            status text not null default 'PENDING',
            payroll_period_id int references payroll_periods(id),
            created_at timestamp default now(),
            created_by int references users(id),
            updated_at timestamp,
            updated_by int references users(id),
            deleted_at timestamp,
            deleted_by int references users(id)
        );`,
	},
	{
		Index:       12,
		Description: "Create table: payroll_items.",
		Query: `
        CREATE TABLE IF NOT EXISTS payroll_items (
            id serial primary key,
            payroll_period_id int not null references payroll_periods(id),
            user_id int not null references users(id),
            base_salary numeric(18, 2) default 0,
            shift_allowance numeric(18, 2) default 0,
            overtime_pay numeric(18, 2) default 0,
            taxable_income numeric(18, 2) default 0,
            gross_pay numeric(18, 2) default 0,
            income_tax numeric(18, 2) default 0,
            pension_employee numeric(18, 2) default 0,
            pension_employer numeric(18, 2) default 0,
            penalties numeric(18, 2) default 0,
            bonuses numeric(18, 2) default 0,
            asset_deductions numeric(18, 2) default 0,
            agency_deductions numeric(18, 2) default 0,
            loan_repayments numeric(18, 2) default 0,
            total_deductions numeric(18, 2) default 0,
            net_pay numeric(18, 2) default 0,
            worked_days int default 0,
            overtime_hours numeric(10, 4) default 0,
            late_days int default 0,
            absent_days int default 0,
            status text not null default 'DRAFT',
            created_at timestamp default now(),
            created_by int references users(id),
            updated_at timestamp,
            updated_by int references users(id),
            deleted_at timestamp,
            deleted_by int references users(id),
            UNIQUE (payroll_period_id, user_id)
        );`,
	},
}

func Migrate(db *postgresql.Database) {
	for _, s := range scheme {
		if _, err := db.Query(s.Query); err != nil {
			log.Fatalln("migrate error", err)
		}
	}
}

func MigrateUP(db *postgresql.Database) {
	var (
		version int
		dirty   bool
		er      *string
	)
	err := db.QueryRow("SELECT version, dirty, error FROM schema_migrations").Scan(&version, &dirty, &er)
	if err != nil {
		if err.Error() == `ERROR: relation "schema_migrations" does not exist (SQLSTATE=42P01)` {
			if _, err = db.Exec(`
				CREATE TABLE IF NOT EXISTS schema_migrations (version int not null, dirty bool not null, error text);
				DELETE FROM schema_migrations;
				INSERT INTO schema_migrations (version, dirty) values (0, false);
			`); err != nil {
				log.Fatalln("migrate schema_migrations create error", err)
			}
			version = 0
			dirty = false
		} else {
			log.Fatalln("migrate schema_migrations scan: ", err)
		}
	}

	if dirty {
		for _, v := range scheme {
			if v.Index == version {
				if _, err = db.Exec(v.Query); err != nil {
					if _, err = db.Exec(fmt.Sprintf(`UPDATE schema_migrations SET error = '%s'`, err.Error())); err != nil {
						log.Fatalln("migrate error", err)
					}
					log.Fatalln(fmt.Sprintf("migrate error version: %d", version), err)
				}
				if _, err = db.Exec(`UPDATE schema_migrations SET dirty = false, error = null`); err != nil {
					log.Fatalln("migrate error", err)
				}
			}
		}
	}

	for _, s := range scheme {
		if s.Index > version {
			if _, err = db.Exec(s.Query); err != nil {
				if _, err = db.Exec(fmt.Sprintf(`UPDATE schema_migrations SET error = '%s', version = %d, dirty = true`, err.Error(), s.Index)); err != nil {
					log.Fatalln("migrate error", err)
				}
				log.Fatalln(fmt.Sprintf("migrate error version: %d", s.Index), err)
			}
			if _, err = db.Exec(fmt.Sprintf(`UPDATE schema_migrations SET version = %d`, s.Index)); err != nil {
				log.Fatalln("migrate error", err)
			}
		}
	}
}

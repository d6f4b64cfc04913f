package incidents

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"daycare-api/internal/apperr"
	"daycare-api/internal/auth"
	"daycare-api/internal/babysitters"
	"daycare-api/internal/children"
	"daycare-api/internal/pagination"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", "\\", "_", " ", "_", ":", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(&auth.User{}, &babysitters.Babysitter{}, &children.Child{}, &Incident{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}

	sqlDB, err := db.DB()
	if err == nil {
		t.Cleanup(func() { _ = sqlDB.Close() })
	}

	return db
}

func seedChild(t *testing.T, db *gorm.DB, email string) *children.Child {
	t.Helper()
	u := auth.User{Email: email, Password: "x", Role: auth.RoleParent}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("seed parent: %v", err)
	}
	c := children.Child{
		FirstName:   "Kid",
		LastName:    "T",
		DateOfBirth: time.Date(2021, 3, 9, 0, 0, 0, 0, time.UTC),
		Gender:      children.GenderMale,
		ParentID:    u.ID,
		SessionType: children.SessionFullDay,
		Status:      children.StatusActive,
		EnrolledAt:  time.Now(),
	}
	if err := db.Create(&c).Error; err != nil {
		t.Fatalf("seed child: %v", err)
	}
	return &c
}

func TestIncidentService_Create_Defaults(t *testing.T) {
	db := newTestDB(t)
	svc := &IncidentService{DB: db}
	kid := seedChild(t, db, "p@test.com")

	created, err := svc.Create(Incident{ChildID: kid.ID, Description: "scraped knee on the slide"})
	if err != nil {
		t.Fatalf("expected nil err, got: %v", err)
	}
	if created.Type != TypeOther || created.Severity != SeverityLow || created.Status != StatusOpen {
		t.Fatalf("unexpected defaults: %+v", created)
	}
	if created.OccurredAt.IsZero() {
		t.Fatalf("expected occurred_at to be stamped")
	}
	if created.ParentNotified {
		t.Fatalf("new incident must not be marked notified")
	}
}

func TestIncidentService_Create_Invalid(t *testing.T) {
	db := newTestDB(t)
	svc := &IncidentService{DB: db}
	kid := seedChild(t, db, "p@test.com")

	cases := []Incident{
		{Description: "no child"},
		{ChildID: kid.ID, Description: "   "},
		{ChildID: kid.ID, Description: "x", Type: "meteor"},
		{ChildID: kid.ID, Description: "x", Severity: "catastrophic"},
		{ChildID: kid.ID, Description: "x", Status: "pending"},
	}
	for i, inc := range cases {
		if _, err := svc.Create(inc); !apperr.IsValidation(err) {
			t.Fatalf("case %d: expected validation error, got: %v", i, err)
		}
	}

	var n int64
	if err := db.Model(&Incident{}).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 0 {
		t.Fatalf("invalid writes reached storage: %d rows", n)
	}
}

func TestIncidentService_Create_AcceptsFullVocabulary(t *testing.T) {
	db := newTestDB(t)
	svc := &IncidentService{DB: db}
	kid := seedChild(t, db, "p@test.com")

	created, err := svc.Create(Incident{
		ChildID:     kid.ID,
		Description: "pushed another child during lunch",
		Type:        TypeBehavior,
		Severity:    SeverityHigh,
		Status:      StatusFollowUp,
	})
	if err != nil {
		t.Fatalf("expected nil err, got: %v", err)
	}
	if created.Type != TypeBehavior || created.Severity != SeverityHigh || created.Status != StatusFollowUp {
		t.Fatalf("values not stored as given: %+v", created)
	}

	critical := SeverityCritical
	closed := StatusClosed
	updated, err := svc.Update(created.ID, IncidentPatch{Severity: &critical, Status: &closed})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Severity != SeverityCritical || updated.Status != StatusClosed {
		t.Fatalf("patch not applied: %+v", updated)
	}
}

func TestIncidentService_Create_UnknownChildFails(t *testing.T) {
	db := newTestDB(t)
	svc := &IncidentService{DB: db}

	if _, err := svc.Create(Incident{ChildID: 999, Description: "x"}); err == nil {
		t.Fatalf("expected an error for unknown child")
	}
}

func TestIncidentService_MarkParentNotified_Idempotent(t *testing.T) {
	db := newTestDB(t)
	svc := &IncidentService{DB: db}
	kid := seedChild(t, db, "p@test.com")

	created, err := svc.Create(Incident{ChildID: kid.ID, Description: "fever at nap time", Type: TypeIllness})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	first, err := svc.MarkParentNotified(created.ID)
	if err != nil {
		t.Fatalf("mark notified: %v", err)
	}
	if !first.ParentNotified || first.ParentNotifiedAt == nil {
		t.Fatalf("notification not recorded: %+v", first)
	}

	second, err := svc.MarkParentNotified(created.ID)
	if err != nil {
		t.Fatalf("second mark notified: %v", err)
	}
	if !second.ParentNotifiedAt.Equal(*first.ParentNotifiedAt) {
		t.Fatalf("timestamp changed on repeat call: %v vs %v", second.ParentNotifiedAt, first.ParentNotifiedAt)
	}

	if _, err := svc.MarkParentNotified(999); !apperr.IsNotFound(err) {
		t.Fatalf("expected not-found, got: %v", err)
	}
}

func TestIncidentService_Update_ResolveWithFollowUp(t *testing.T) {
	db := newTestDB(t)
	svc := &IncidentService{DB: db}
	kid := seedChild(t, db, "p@test.com")

	created, err := svc.Create(Incident{ChildID: kid.ID, Description: "bumped head", Type: TypeInjury, Severity: SeverityMedium})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	followStatus := StatusFollowUp
	followUp := true
	notes := "check for bruising tomorrow morning"
	updated, err := svc.Update(created.ID, IncidentPatch{Status: &followStatus, FollowUpRequired: &followUp, FollowUpNotes: &notes})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Status != StatusFollowUp || !updated.FollowUpRequired || updated.FollowUpNotes != notes {
		t.Fatalf("patch not applied: %+v", updated)
	}
	if updated.Description != created.Description {
		t.Fatalf("untouched field changed: %q", updated.Description)
	}

	empty := "   "
	if _, err := svc.Update(created.ID, IncidentPatch{Description: &empty}); !apperr.IsValidation(err) {
		t.Fatalf("expected validation error for blank description, got: %v", err)
	}
}

func TestIncidentService_Update_EmptyPatch_NoOp(t *testing.T) {
	db := newTestDB(t)
	svc := &IncidentService{DB: db}
	kid := seedChild(t, db, "p@test.com")

	created, err := svc.Create(Incident{ChildID: kid.ID, Description: "x"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.Update(created.ID, IncidentPatch{})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.ID != created.ID || updated.Status != created.Status {
		t.Fatalf("no-op patch changed the record: %+v", updated)
	}
}

func TestIncidentService_DeletingChild_CascadesToIncidents(t *testing.T) {
	db := newTestDB(t)
	svc := &IncidentService{DB: db}
	kid := seedChild(t, db, "p@test.com")

	created, err := svc.Create(Incident{ChildID: kid.ID, Description: "x"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := db.Delete(&children.Child{}, kid.ID).Error; err != nil {
		t.Fatalf("delete child: %v", err)
	}

	if _, err := svc.GetByID(created.ID); !apperr.IsNotFound(err) {
		t.Fatalf("expected incident removed with child, got: %v", err)
	}
}

func TestIncidentService_List_Filters(t *testing.T) {
	db := newTestDB(t)
	svc := &IncidentService{DB: db}
	kidA := seedChild(t, db, "a@test.com")
	kidB := seedChild(t, db, "b@test.com")

	seed := []Incident{
		{ChildID: kidA.ID, Description: "a1", Type: TypeInjury, Severity: SeverityCritical},
		{ChildID: kidA.ID, Description: "a2", Type: TypeIllness},
		{ChildID: kidB.ID, Description: "b1", Type: TypeInjury},
	}
	for _, inc := range seed {
		if _, err := svc.Create(inc); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	items, page, err := svc.List(ListFilter{ChildID: kidA.ID}, pagination.Params{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 2 || page.Total != 2 {
		t.Fatalf("unexpected child filter result: n=%d %+v", len(items), page)
	}

	items, _, err = svc.List(ListFilter{Type: TypeInjury, Severity: SeverityCritical}, pagination.Params{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 1 || items[0].Description != "a1" {
		t.Fatalf("unexpected severity filter result: %+v", items)
	}
}

func TestIncidentService_List_OccurredRange(t *testing.T) {
	db := newTestDB(t)
	svc := &IncidentService{DB: db}
	kid := seedChild(t, db, "p@test.com")

	for day := 1; day <= 3; day++ {
		occurred := time.Date(2026, 3, day, 10, 0, 0, 0, time.UTC)
		if _, err := svc.Create(Incident{ChildID: kid.ID, Description: fmt.Sprintf("d%d", day), OccurredAt: occurred}); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	from := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	until := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)
	items, _, err := svc.List(ListFilter{OccurredFrom: &from, OccurredUntil: &until}, pagination.Params{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 1 || items[0].Description != "d2" {
		t.Fatalf("unexpected range result: %+v", items)
	}
}

func TestIncidentService_Delete_ThenGetFails(t *testing.T) {
	db := newTestDB(t)
	svc := &IncidentService{DB: db}
	kid := seedChild(t, db, "p@test.com")

	created, err := svc.Create(Incident{ChildID: kid.ID, Description: "x"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Delete(created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.GetByID(created.ID); !apperr.IsNotFound(err) {
		t.Fatalf("expected not-found after delete, got: %v", err)
	}
	if err := svc.Delete(created.ID); !apperr.IsNotFound(err) {
		t.Fatalf("expected not-found on second delete, got: %v", err)
	}
}

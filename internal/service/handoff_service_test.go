package service

import (
	"context"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"educonsult-be/internal/dto"
	"educonsult-be/internal/entity"
	"educonsult-be/internal/pkg/apperror"
	"educonsult-be/internal/repository/specification"
	"educonsult-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscalateCreatesHandoffAndFlagsSession(t *testing.T) {
	svc, uowFactory := newHandoffFixture(t)
	ctx := context.Background()

	session := seedSession(t, uowFactory, "comp_a", "sess-1")

	res, err := svc.Escalate(ctx, "comp_a", &dto.EscalateSessionRequest{
		SessionId: session.SessionToken,
		Reason:    "needs visa guidance",
		Priority:  "high",
	})

	require.NoError(t, err)
	assert.Equal(t, "needs visa guidance", res.HandoffSession.EscalationReason)
	assert.Equal(t, "high", res.HandoffSession.Priority)
	assert.Nil(t, res.HandoffSession.Agent)

	uow := uowFactory.NewUnitOfWork(ctx)
	updated, err := uow.ChatSessionRepository().FindOne(ctx, specification.BySessionToken{SessionToken: session.SessionToken})
	require.NoError(t, err)
	assert.Equal(t, entity.SessionStatusEscalated, updated.Status)
	assert.True(t, updated.IsEscalated())
}

func TestEscalateDefaultsToMediumPriority(t *testing.T) {
	svc, uowFactory := newHandoffFixture(t)
	ctx := context.Background()

	session := seedSession(t, uowFactory, "comp_a", "sess-1")

	res, err := svc.Escalate(ctx, "comp_a", &dto.EscalateSessionRequest{
		SessionId: session.SessionToken,
		Reason:    "general",
	})

	require.NoError(t, err)
	assert.Equal(t, string(entity.PriorityMedium), res.HandoffSession.Priority)
}

func TestEscalateTwiceConflicts(t *testing.T) {
	svc, uowFactory := newHandoffFixture(t)
	ctx := context.Background()

	session := seedSession(t, uowFactory, "comp_a", "sess-1")

	_, err := svc.Escalate(ctx, "comp_a", &dto.EscalateSessionRequest{SessionId: session.SessionToken, Reason: "first"})
	require.NoError(t, err)

	_, err = svc.Escalate(ctx, "comp_a", &dto.EscalateSessionRequest{SessionId: session.SessionToken, Reason: "second"})
	require.Error(t, err)
	assert.True(t, apperror.IsConflict(err))
}

func TestEscalateUnknownOrForeignSession(t *testing.T) {
	svc, uowFactory := newHandoffFixture(t)
	ctx := context.Background()

	seedSession(t, uowFactory, "comp_a", "sess-1")

	_, err := svc.Escalate(ctx, "comp_a", &dto.EscalateSessionRequest{SessionId: "missing", Reason: "r"})
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))

	// a session of another tenant is indistinguishable from a missing one
	_, err = svc.Escalate(ctx, "comp_b", &dto.EscalateSessionRequest{SessionId: "sess-1", Reason: "r"})
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func escalateForTest(t *testing.T, svc IHandoffService, token string) uuid.UUID {
	t.Helper()

	res, err := svc.Escalate(context.Background(), "comp_a", &dto.EscalateSessionRequest{
		SessionId: token,
		Reason:    "needs help",
	})
	require.NoError(t, err)
	return res.HandoffSession.Id
}

func TestAssignLinksAgentAndAuditsIt(t *testing.T) {
	svc, uowFactory := newHandoffFixture(t)
	ctx := context.Background()

	session := seedSession(t, uowFactory, "comp_a", "sess-1")
	agent := seedAgent(t, uowFactory, "comp_a", "Ram")
	handoffId := escalateForTest(t, svc, session.SessionToken)

	res, err := svc.Assign(ctx, "comp_a", nil, &dto.AssignSessionRequest{
		HandoffSessionId: handoffId,
		AgentId:          agent.Id,
	})

	require.NoError(t, err)
	require.NotNil(t, res.Agent)
	assert.Equal(t, agent.Id, res.Agent.Id)
	assert.Equal(t, string(entity.SessionStatusAssigned), res.ChatSession.Status)

	uow := uowFactory.NewUnitOfWork(ctx)
	updated, err := uow.ChatSessionRepository().FindOne(ctx, specification.BySessionToken{SessionToken: session.SessionToken})
	require.NoError(t, err)
	assert.Equal(t, entity.SessionStatusAssigned, updated.Status)

	activities, err := svc.Activities(ctx, "comp_a", &agent.Id, "", 0)
	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Equal(t, string(entity.ActivitySessionAssign), activities[0].ActivityType)
}

func TestReassignRecordsTransfer(t *testing.T) {
	svc, uowFactory := newHandoffFixture(t)
	ctx := context.Background()

	session := seedSession(t, uowFactory, "comp_a", "sess-1")
	first := seedAgent(t, uowFactory, "comp_a", "Ram")
	second := seedAgent(t, uowFactory, "comp_a", "Shyam")
	handoffId := escalateForTest(t, svc, session.SessionToken)

	_, err := svc.Assign(ctx, "comp_a", nil, &dto.AssignSessionRequest{HandoffSessionId: handoffId, AgentId: first.Id})
	require.NoError(t, err)
	_, err = svc.Assign(ctx, "comp_a", nil, &dto.AssignSessionRequest{HandoffSessionId: handoffId, AgentId: second.Id})
	require.NoError(t, err)

	uow := uowFactory.NewUnitOfWork(ctx)
	transfers, err := uow.SessionTransferRepository().FindAll(ctx, specification.ByHandoffSessionID{HandoffSessionID: handoffId})
	require.NoError(t, err)
	require.Len(t, transfers, 1)
	assert.Equal(t, first.Id, *transfers[0].FromAgentId)
	assert.Equal(t, second.Id, transfers[0].ToAgentId)
	assert.Equal(t, "Reassigned by supervisor", transfers[0].Reason)
}

func TestAssignSameAgentDoesNotTransfer(t *testing.T) {
	svc, uowFactory := newHandoffFixture(t)
	ctx := context.Background()

	session := seedSession(t, uowFactory, "comp_a", "sess-1")
	agent := seedAgent(t, uowFactory, "comp_a", "Ram")
	handoffId := escalateForTest(t, svc, session.SessionToken)

	_, err := svc.Assign(ctx, "comp_a", nil, &dto.AssignSessionRequest{HandoffSessionId: handoffId, AgentId: agent.Id})
	require.NoError(t, err)
	_, err = svc.Assign(ctx, "comp_a", nil, &dto.AssignSessionRequest{HandoffSessionId: handoffId, AgentId: agent.Id})
	require.NoError(t, err)

	uow := uowFactory.NewUnitOfWork(ctx)
	transfers, err := uow.SessionTransferRepository().FindAll(ctx, specification.ByHandoffSessionID{HandoffSessionID: handoffId})
	require.NoError(t, err)
	assert.Empty(t, transfers)
}

func TestAssignForeignAgentNotFound(t *testing.T) {
	svc, uowFactory := newHandoffFixture(t)
	ctx := context.Background()

	session := seedSession(t, uowFactory, "comp_a", "sess-1")
	outsider := seedAgent(t, uowFactory, "comp_b", "Eve")
	handoffId := escalateForTest(t, svc, session.SessionToken)

	_, err := svc.Assign(ctx, "comp_a", nil, &dto.AssignSessionRequest{HandoffSessionId: handoffId, AgentId: outsider.Id})

	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestResolveIsTerminal(t *testing.T) {
	svc, uowFactory := newHandoffFixture(t)
	ctx := context.Background()

	session := seedSession(t, uowFactory, "comp_a", "sess-1")
	agent := seedAgent(t, uowFactory, "comp_a", "Ram")
	handoffId := escalateForTest(t, svc, session.SessionToken)

	_, err := svc.Assign(ctx, "comp_a", nil, &dto.AssignSessionRequest{HandoffSessionId: handoffId, AgentId: agent.Id})
	require.NoError(t, err)

	res, err := svc.Resolve(ctx, "comp_a", &dto.ResolveSessionRequest{HandoffSessionId: handoffId, Notes: "sorted"})
	require.NoError(t, err)
	require.NotNil(t, res.ResolvedAt)
	assert.Equal(t, "sorted", res.Notes)

	uow := uowFactory.NewUnitOfWork(ctx)
	updated, err := uow.ChatSessionRepository().FindOne(ctx, specification.BySessionToken{SessionToken: session.SessionToken})
	require.NoError(t, err)
	assert.Equal(t, entity.SessionStatusResolved, updated.Status)
	assert.False(t, updated.IsEscalated())

	// resolving again must not succeed
	_, err = svc.Resolve(ctx, "comp_a", &dto.ResolveSessionRequest{HandoffSessionId: handoffId})
	require.Error(t, err)
	assert.True(t, apperror.IsConflict(err))
}

func TestSendAgentMessageAuthorization(t *testing.T) {
	svc, uowFactory := newHandoffFixture(t)
	ctx := context.Background()

	session := seedSession(t, uowFactory, "comp_a", "sess-1")
	assigned := seedAgent(t, uowFactory, "comp_a", "Ram")
	other := seedAgent(t, uowFactory, "comp_a", "Shyam")

	// not escalated yet
	_, err := svc.SendAgentMessage(ctx, "comp_a", assigned.Id, &dto.SendAgentMessageRequest{
		SessionId: session.SessionToken,
		Message:   "hello",
	})
	require.Error(t, err)
	kind, _ := apperror.KindOf(err)
	assert.Equal(t, apperror.KindAuthorization, kind)

	handoffId := escalateForTest(t, svc, session.SessionToken)
	_, err = svc.Assign(ctx, "comp_a", nil, &dto.AssignSessionRequest{HandoffSessionId: handoffId, AgentId: assigned.Id})
	require.NoError(t, err)

	// a different agent cannot write into the session
	_, err = svc.SendAgentMessage(ctx, "comp_a", other.Id, &dto.SendAgentMessageRequest{
		SessionId: session.SessionToken,
		Message:   "hello",
	})
	require.Error(t, err)
	kind, _ = apperror.KindOf(err)
	assert.Equal(t, apperror.KindAuthorization, kind)
}

func TestSendAgentMessagePersistsAndAudits(t *testing.T) {
	svc, uowFactory := newHandoffFixture(t)
	ctx := context.Background()

	session := seedSession(t, uowFactory, "comp_a", "sess-1")
	agent := seedAgent(t, uowFactory, "comp_a", "Ram")
	handoffId := escalateForTest(t, svc, session.SessionToken)
	_, err := svc.Assign(ctx, "comp_a", nil, &dto.AssignSessionRequest{HandoffSessionId: handoffId, AgentId: agent.Id})
	require.NoError(t, err)

	longMessage := strings.Repeat("x", 80)
	res, err := svc.SendAgentMessage(ctx, "comp_a", agent.Id, &dto.SendAgentMessageRequest{
		SessionId: session.SessionToken,
		Message:   longMessage,
	})

	require.NoError(t, err)
	assert.Equal(t, longMessage, res.Content)

	uow := uowFactory.NewUnitOfWork(ctx)
	messages, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.ByChatSessionID{ChatSessionID: session.Id},
		specification.ByMessageType{MessageType: string(entity.MessageTypeAgent)},
	)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, agent.Id.String(), messages[0].Metadata["agent_id"])
	assert.Equal(t, "Ram", messages[0].Metadata["agent_name"])

	activities, err := svc.Activities(ctx, "comp_a", &agent.Id, string(entity.ActivityMessageSent), 0)
	require.NoError(t, err)
	require.Len(t, activities, 1)
	preview, _ := activities[0].Metadata["message_preview"].(string)
	assert.Len(t, preview, 50)
}

func TestSessionMessagesReturnsTranscriptInOrder(t *testing.T) {
	svc, uowFactory := newHandoffFixture(t)
	ctx := context.Background()

	session := seedSession(t, uowFactory, "comp_a", "sess-1")
	agent := seedAgent(t, uowFactory, "comp_a", "Ram")
	handoffId := escalateForTest(t, svc, session.SessionToken)
	_, err := svc.Assign(ctx, "comp_a", nil, &dto.AssignSessionRequest{HandoffSessionId: handoffId, AgentId: agent.Id})
	require.NoError(t, err)

	uow := uowFactory.NewUnitOfWork(ctx)
	base := time.Now().Add(-time.Hour)
	for i, text := range []string{"hi there", "how can we help"} {
		content := text
		messageType := entity.MessageTypeUser
		if i%2 == 1 {
			messageType = entity.MessageTypeBot
		}
		require.NoError(t, uow.ChatMessageRepository().Create(ctx, &entity.ChatMessage{
			Id:            uuid.New(),
			ChatSessionId: session.Id,
			MessageType:   messageType,
			Content:       &content,
			Timestamp:     base.Add(time.Duration(i) * time.Minute),
		}))
	}

	_, err = svc.SendAgentMessage(ctx, "comp_a", agent.Id, &dto.SendAgentMessageRequest{
		SessionId: session.SessionToken,
		Message:   "an advisor here",
	})
	require.NoError(t, err)

	messages, err := svc.SessionMessages(ctx, "comp_a", agent.Id, session.SessionToken)
	require.NoError(t, err)
	require.Len(t, messages, 3)
	assert.Equal(t, "user", messages[0].MessageType)
	assert.Equal(t, "hi there", *messages[0].Content)
	assert.Equal(t, "bot", messages[1].MessageType)
	assert.Equal(t, "agent", messages[2].MessageType)
}

func TestSessionMessagesAuthorization(t *testing.T) {
	svc, uowFactory := newHandoffFixture(t)
	ctx := context.Background()

	session := seedSession(t, uowFactory, "comp_a", "sess-1")
	assigned := seedAgent(t, uowFactory, "comp_a", "Ram")
	other := seedAgent(t, uowFactory, "comp_a", "Shyam")

	// not escalated yet
	_, err := svc.SessionMessages(ctx, "comp_a", assigned.Id, session.SessionToken)
	require.Error(t, err)
	kind, _ := apperror.KindOf(err)
	assert.Equal(t, apperror.KindAuthorization, kind)

	handoffId := escalateForTest(t, svc, session.SessionToken)
	_, err = svc.Assign(ctx, "comp_a", nil, &dto.AssignSessionRequest{HandoffSessionId: handoffId, AgentId: assigned.Id})
	require.NoError(t, err)

	_, err = svc.SessionMessages(ctx, "comp_a", other.Id, session.SessionToken)
	require.Error(t, err)
	kind, _ = apperror.KindOf(err)
	assert.Equal(t, apperror.KindAuthorization, kind)

	// a token from another tenant never resolves
	_, err = svc.SessionMessages(ctx, "comp_b", assigned.Id, session.SessionToken)
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestAgentSessionsPaginationAndStatusFilter(t *testing.T) {
	svc, uowFactory := newHandoffFixture(t)
	ctx := context.Background()

	agent := seedAgent(t, uowFactory, "comp_a", "Ram")
	for i := 0; i < 12; i++ {
		session := seedSession(t, uowFactory, "comp_a", "sess-"+uuid.NewString())
		handoffId := escalateForTest(t, svc, session.SessionToken)
		_, err := svc.Assign(ctx, "comp_a", nil, &dto.AssignSessionRequest{HandoffSessionId: handoffId, AgentId: agent.Id})
		require.NoError(t, err)
	}

	res, err := svc.AgentSessions(ctx, "comp_a", agent.Id, &dto.AgentSessionsQuery{})
	require.NoError(t, err)
	assert.EqualValues(t, 12, res.Count)
	assert.Equal(t, 1, res.CurrentPage)
	assert.Equal(t, 2, res.TotalPages)
	assert.True(t, res.HasNext)
	assert.False(t, res.HasPrevious)
	assert.Len(t, res.Sessions, 10)

	res, err = svc.AgentSessions(ctx, "comp_a", agent.Id, &dto.AgentSessionsQuery{Page: 2})
	require.NoError(t, err)
	assert.Len(t, res.Sessions, 2)
	assert.False(t, res.HasNext)
	assert.True(t, res.HasPrevious)

	// unassigned is an admin view; agents get an empty page
	res, err = svc.AgentSessions(ctx, "comp_a", agent.Id, &dto.AgentSessionsQuery{Status: "unassigned"})
	require.NoError(t, err)
	assert.Empty(t, res.Sessions)

	res, err = svc.AgentSessions(ctx, "comp_a", agent.Id, &dto.AgentSessionsQuery{Status: "resolved"})
	require.NoError(t, err)
	assert.Empty(t, res.Sessions)
}

func TestDashboardStats(t *testing.T) {
	svc, uowFactory := newHandoffFixture(t)
	ctx := context.Background()

	agent := seedAgent(t, uowFactory, "comp_a", "Ram")

	assignedSession := seedSession(t, uowFactory, "comp_a", "sess-assigned")
	assignedId := escalateForTest(t, svc, assignedSession.SessionToken)
	_, err := svc.Assign(ctx, "comp_a", nil, &dto.AssignSessionRequest{HandoffSessionId: assignedId, AgentId: agent.Id})
	require.NoError(t, err)

	unassignedSession := seedSession(t, uowFactory, "comp_a", "sess-unassigned")
	escalateForTest(t, svc, unassignedSession.SessionToken)

	resolvedSession := seedSession(t, uowFactory, "comp_a", "sess-resolved")
	resolvedId := escalateForTest(t, svc, resolvedSession.SessionToken)
	_, err = svc.Assign(ctx, "comp_a", nil, &dto.AssignSessionRequest{HandoffSessionId: resolvedId, AgentId: agent.Id})
	require.NoError(t, err)
	_, err = svc.Resolve(ctx, "comp_a", &dto.ResolveSessionRequest{HandoffSessionId: resolvedId})
	require.NoError(t, err)

	res, err := svc.Dashboard(ctx, "comp_a", agent.Id)

	require.NoError(t, err)
	assert.Equal(t, agent.Id, res.AgentInfo.Id)
	assert.EqualValues(t, 1, res.Stats.AssignedCount)
	assert.EqualValues(t, 1, res.Stats.UnassignedCount)
	assert.EqualValues(t, 1, res.Stats.ResolvedToday)
	require.Len(t, res.AssignedSessions, 1)
	require.Len(t, res.UnassignedSessions, 1)
	assert.Equal(t, "sess-unassigned", res.UnassignedSessions[0].ChatSession.SessionId)
}

type recordingMailer struct {
	escalationAlerts  []string
	assignmentNotices []string
}

func (m *recordingMailer) SendAssignmentNotice(toEmail, agentName, sessionToken, priority string) error {
	m.assignmentNotices = append(m.assignmentNotices, toEmail)
	return nil
}

func (m *recordingMailer) SendEscalationAlert(toEmail, sessionToken, reason string) error {
	m.escalationAlerts = append(m.escalationAlerts, toEmail)
	return nil
}

func TestEscalateAlertsAvailableAgents(t *testing.T) {
	db := newTestDB(t)
	uowFactory := unitofwork.NewRepositoryFactory(db)
	mail := &recordingMailer{}
	svc := NewHandoffService(uowFactory, nil, mail, nopLogger{})
	ctx := context.Background()

	uow := uowFactory.NewUnitOfWork(ctx)
	available := &entity.Agent{Id: uuid.New(), CompanyId: "comp_a", Name: "Ram", Email: "ram@educonsult.test", Status: entity.AgentStatusAvailable, IsActive: true}
	offline := &entity.Agent{Id: uuid.New(), CompanyId: "comp_a", Name: "Shyam", Email: "shyam@educonsult.test", Status: entity.AgentStatusOffline, IsActive: true}
	noEmail := &entity.Agent{Id: uuid.New(), CompanyId: "comp_a", Name: "Hari", Status: entity.AgentStatusAvailable, IsActive: true}
	for _, a := range []*entity.Agent{available, offline, noEmail} {
		require.NoError(t, uow.AgentRepository().Create(ctx, a))
	}

	session := seedSession(t, uowFactory, "comp_a", "sess-1")
	handoffId := escalateForTest(t, svc, session.SessionToken)

	// only the available agent with an email gets the alert
	assert.Equal(t, []string{"ram@educonsult.test"}, mail.escalationAlerts)

	_, err := svc.Assign(ctx, "comp_a", nil, &dto.AssignSessionRequest{HandoffSessionId: handoffId, AgentId: available.Id})
	require.NoError(t, err)
	assert.Equal(t, []string{"ram@educonsult.test"}, mail.assignmentNotices)
}

func TestAgentSessionsPriorityFilter(t *testing.T) {
	svc, uowFactory := newHandoffFixture(t)
	ctx := context.Background()

	agent := seedAgent(t, uowFactory, "comp_a", "Ram")

	urgent := seedSession(t, uowFactory, "comp_a", "sess-urgent")
	res, err := svc.Escalate(ctx, "comp_a", &dto.EscalateSessionRequest{
		SessionId: urgent.SessionToken,
		Reason:    "visa deadline tomorrow",
		Priority:  string(entity.PriorityHigh),
	})
	require.NoError(t, err)
	_, err = svc.Assign(ctx, "comp_a", nil, &dto.AssignSessionRequest{HandoffSessionId: res.HandoffSession.Id, AgentId: agent.Id})
	require.NoError(t, err)

	routine := seedSession(t, uowFactory, "comp_a", "sess-routine")
	routineId := escalateForTest(t, svc, routine.SessionToken)
	_, err = svc.Assign(ctx, "comp_a", nil, &dto.AssignSessionRequest{HandoffSessionId: routineId, AgentId: agent.Id})
	require.NoError(t, err)

	page, err := svc.AgentSessions(ctx, "comp_a", agent.Id, &dto.AgentSessionsQuery{Priority: string(entity.PriorityHigh)})
	require.NoError(t, err)
	require.Len(t, page.Sessions, 1)
	assert.Equal(t, "sess-urgent", page.Sessions[0].ChatSession.SessionId)

	page, err = svc.AgentSessions(ctx, "comp_a", agent.Id, &dto.AgentSessionsQuery{})
	require.NoError(t, err)
	assert.Len(t, page.Sessions, 2)
}

func TestSendAgentMessagePreviewTruncatesOnRunes(t *testing.T) {
	svc, uowFactory := newHandoffFixture(t)
	ctx := context.Background()

	session := seedSession(t, uowFactory, "comp_a", "sess-1")
	agent := seedAgent(t, uowFactory, "comp_a", "Ram")
	handoffId := escalateForTest(t, svc, session.SessionToken)
	_, err := svc.Assign(ctx, "comp_a", nil, &dto.AssignSessionRequest{HandoffSessionId: handoffId, AgentId: agent.Id})
	require.NoError(t, err)

	_, err = svc.SendAgentMessage(ctx, "comp_a", agent.Id, &dto.SendAgentMessageRequest{
		SessionId: session.SessionToken,
		Message:   strings.Repeat("नमस्ते ", 20),
	})
	require.NoError(t, err)

	activities, err := svc.Activities(ctx, "comp_a", &agent.Id, string(entity.ActivityMessageSent), 0)
	require.NoError(t, err)
	require.Len(t, activities, 1)
	preview, _ := activities[0].Metadata["message_preview"].(string)
	assert.True(t, utf8.ValidString(preview))
	assert.Equal(t, 50, utf8.RuneCountInString(preview))
}

func TestDashboardExcludesEarlierResolutions(t *testing.T) {
	svc, uowFactory := newHandoffFixture(t)
	ctx := context.Background()

	agent := seedAgent(t, uowFactory, "comp_a", "Ram")
	session := seedSession(t, uowFactory, "comp_a", "sess-1")
	handoffId := escalateForTest(t, svc, session.SessionToken)
	_, err := svc.Assign(ctx, "comp_a", nil, &dto.AssignSessionRequest{HandoffSessionId: handoffId, AgentId: agent.Id})
	require.NoError(t, err)
	_, err = svc.Resolve(ctx, "comp_a", &dto.ResolveSessionRequest{HandoffSessionId: handoffId})
	require.NoError(t, err)

	// push the resolution back past the start of today
	uow := uowFactory.NewUnitOfWork(ctx)
	handoff, err := uow.HandoffSessionRepository().FindOne(ctx, specification.ByID{ID: handoffId})
	require.NoError(t, err)
	yesterday := time.Now().Add(-25 * time.Hour)
	handoff.ResolvedAt = &yesterday
	require.NoError(t, uow.HandoffSessionRepository().Update(ctx, handoff))

	res, err := svc.Dashboard(ctx, "comp_a", agent.Id)
	require.NoError(t, err)
	assert.EqualValues(t, 0, res.Stats.ResolvedToday)
}

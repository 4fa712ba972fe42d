package models

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestNewUserDefaults(t *testing.T) {
	user := NewUser(UserCreateRequest{Username: "ada", Email: "ada@example.com"})

	if user.ID == "" {
		t.Fatal("id must be generated")
	}
	if _, err := uuid.Parse(user.ID); err != nil {
		t.Fatalf("id %q is not a uuid: %v", user.ID, err)
	}
	if user.Role != RoleStudent {
		t.Fatalf("default role = %q, want %q", user.Role, RoleStudent)
	}
	if user.CreatedAt.IsZero() {
		t.Fatal("created_at must be set")
	}
	if user.Skills == nil || user.MentorCategories == nil {
		t.Fatal("list fields must serialize as empty arrays, not null")
	}
}

func TestNewUserKeepsRoleAndMentorFlagIndependent(t *testing.T) {
	user := NewUser(UserCreateRequest{Username: "m", Email: "m@x.co", Role: RoleMentor})
	if user.IsMentor {
		t.Fatal("role=mentor must not force is_mentor")
	}
}

func TestNewInventionPlaceholderCreator(t *testing.T) {
	inv := NewInvention(InventionCreateRequest{Title: "t", Description: "d", CreatorName: "Ada"})

	if !strings.HasPrefix(inv.CreatorID, "user_") {
		t.Fatalf("placeholder creator id = %q", inv.CreatorID)
	}
	if len(inv.CreatorID) != len("user_")+8 {
		t.Fatalf("placeholder creator id %q should carry 8 uuid chars", inv.CreatorID)
	}
	if inv.CreatedAt.IsZero() || inv.UpdatedAt.IsZero() {
		t.Fatal("timestamps must be set")
	}
	if inv.ViewCount != 0 || inv.TotalVotes != 0 || inv.AverageRating != 0 {
		t.Fatal("aggregates must start at zero")
	}
}

func TestNewInventionKeepsSuppliedCreator(t *testing.T) {
	inv := NewInvention(InventionCreateRequest{Title: "t", Description: "d", CreatorName: "Ada", CreatorID: "u-1"})
	if inv.CreatorID != "u-1" {
		t.Fatalf("creator id overwritten: %q", inv.CreatorID)
	}
}

func TestNewGroupCreatorIsSoleModeratorAndFirstMember(t *testing.T) {
	group := NewGroup(GroupCreateRequest{Name: "builders", CreatorID: "u-9"})

	if len(group.Moderators) != 1 || group.Moderators[0] != "u-9" {
		t.Fatalf("moderators = %v, want just the creator", group.Moderators)
	}
	if len(group.Members) != 1 || group.Members[0] != "u-9" {
		t.Fatalf("members = %v, want just the creator", group.Members)
	}
}

func TestNewPeerReviewStartsPending(t *testing.T) {
	review := NewPeerReview(PeerReviewCreateRequest{InventionID: "inv-1", ReviewerName: "Bob"}, "creator-1")

	if review.Status != ReviewStatusPending {
		t.Fatalf("status = %q, want pending", review.Status)
	}
	if review.OverallScore != nil || review.CompletedAt != nil {
		t.Fatal("new review must not carry derived completion fields")
	}
	if review.CreatorID != "creator-1" {
		t.Fatalf("creator id = %q", review.CreatorID)
	}
}

func TestNewNotificationDefaults(t *testing.T) {
	n := NewNotification("u-1", NotificationNewComment, "t", "m", nil)

	if n.Read {
		t.Fatal("notifications start unread")
	}
	if n.Data == nil {
		t.Fatal("data must serialize as an object, not null")
	}
}

func TestNewChatMessageTimestamp(t *testing.T) {
	msg := NewChatMessage(ChatMessageCreateRequest{GroupID: "g", SenderName: "s", Message: "hi"})
	if msg.ID == "" || msg.Timestamp.IsZero() {
		t.Fatal("id and timestamp must be generated")
	}
}

func TestNewPublicSuggestionStartsAtZeroVotes(t *testing.T) {
	s := NewPublicSuggestion(PublicSuggestionCreate{Title: "t", Description: "d", TechnologyArea: "ai", SuggestedBy: "x"})
	if s.Votes != 0 {
		t.Fatalf("votes = %d, want 0", s.Votes)
	}
}

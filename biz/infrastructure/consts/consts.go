package consts

// Role 用户角色, 只有教师和学生两种
type Role string

const (
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
)

// ParseRole 解析角色, 未知角色返回false
func ParseRole(s string) (Role, bool) {
	switch r := Role(s); r {
	case RoleTeacher, RoleStudent:
		return r, true
	default:
		return "", false
	}
}

// 数据库字段
const (
	ID           = "_id"
	UserID       = "user_id"
	ClassID      = "class_id"
	AssignmentID = "assignment_id"
	OwnerID      = "owner_id"
	TeacherID    = "teacher_id"
	StudentID    = "student_id"
	FolderID     = "folder_id"
	SenderID     = "sender_id"
	ReceiverID   = "receiver_id"
	Students     = "students"
	ClassCode    = "class_code"
	Email        = "email"
	Username     = "username"
	CreateTime   = "create_time"
	DueDate      = "due_date"
	Read         = "read"
)

// http
const (
	Post            = "POST"
	ContentTypeJson = "application/json"
	CharSetUTF8     = "UTF-8"
)

// 通知类型
const (
	NotificationAnnouncement = "announcement"
	NotificationAssignment   = "assignment"
	NotificationGrade        = "grade"
)

// 默认值
const (
	ClassCodeLength    = 8
	DefaultMaxPoints   = 100
	MaxListLimit       = 100
	MaxNotifications   = 50
	MaxAnnouncements   = 50
	MaxChatMessages    = 100
	MaxConversations   = 50
	MaxLeaderboard     = 20
	MaxSearchResults   = 10
	MaxFileContextSize = 8000
)

package provider

import (
	"github.com/mdtousif1712-create/prodigy-ai/biz/application/service"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/cache"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/config"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/repository/aichat"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/repository/announcement"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/repository/assignment"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/repository/chat"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/repository/class"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/repository/file"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/repository/folder"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/repository/notification"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/repository/submission"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/repository/user"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/storage"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/util"

	"github.com/google/wire"
)

var provider *Provider

func Init() {
	var err error
	provider, err = NewProvider()
	if err != nil {
		panic(err)
	}
}

// Provider 提供controller依赖的对象
type Provider struct {
	Config              *config.Config
	UserService         service.UserService
	ClassService        service.ClassService
	AnnouncementService service.AnnouncementService
	AssignmentService   service.AssignmentService
	SubmissionService   service.SubmissionService
	FileService         service.FileService
	FolderService       service.FolderService
	ChatService         service.ChatService
	NotificationService service.NotificationService
	AggregationService  service.AggregationService
	AIService           service.AIService
}

func Get() *Provider {
	return provider
}

var ApplicationSet = wire.NewSet(
	service.UserServiceSet,
	service.ClassServiceSet,
	service.AnnouncementServiceSet,
	service.AssignmentServiceSet,
	service.SubmissionServiceSet,
	service.FileServiceSet,
	service.FolderServiceSet,
	service.ChatServiceSet,
	service.NotificationServiceSet,
	service.AggregationServiceSet,
	service.AIServiceSet,
)

var InfrastructureSet = wire.NewSet(
	config.NewConfig,
	user.MapperSet,
	class.MapperSet,
	announcement.MapperSet,
	assignment.MapperSet,
	submission.MapperSet,
	file.MapperSet,
	folder.MapperSet,
	chat.MapperSet,
	notification.MapperSet,
	aichat.MapperSet,
	storage.S3Set,
	cache.ExtractCacheSet,
	util.ClientSet,
)

var AllProvider = wire.NewSet(
	ApplicationSet,
	InfrastructureSet,
)

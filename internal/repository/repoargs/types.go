package repoargs

type RepositoryName string

const (
	UserRepoName         RepositoryName = "user"
	ProductRepoName      RepositoryName = "product"
	CodeRepoName         RepositoryName = "code"
	OrderRepoName        RepositoryName = "order"
	DepositRepoName      RepositoryName = "deposit"
	NotificationRepoName RepositoryName = "notification"
	SettingRepoName      RepositoryName = "setting"
	StatsRepoName        RepositoryName = "stats"
)

// BatchExecQueryRow колбэк результата i-го запроса батча.
type BatchExecQueryRow func(i int, err error)

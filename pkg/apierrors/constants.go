package apierrors

const (
	MsgInvalidPayload   = "invalidPayload"
	MsgInvalidQuery     = "invalidQuery"
	MsgValidationFailed = "validationFailed"
	MsgUnknownTags      = "unknownTags"
	MsgRouteNotFound    = "routeNotFound"
	MsgInternalError    = "internalError"

	MsgInvalidTaskID    = "invalidTaskID"
	MsgTaskNotFound     = "taskNotFound"
	MsgFailListTask     = "errorListTask"
	MsgFailGetTask      = "failGetTask"
	MsgFailCreateTask   = "failCreateTask"
	MsgFailUpdateTask   = "failUpdateTask"
	MsgFailDeleteTask   = "failDeleteTask"
	MsgFailCompleteTask = "failCompleteTask"

	MsgInvalidTagID  = "invalidTagID"
	MsgTagNotFound   = "tagNotFound"
	MsgTagNameTaken  = "tagNameTaken"
	MsgFailListTag   = "failListTag"
	MsgFailGetTag    = "failGetTag"
	MsgFailCreateTag = "failCreateTag"
	MsgFailUpdateTag = "failUpdateTag"
	MsgFailDeleteTag = "failDeleteTag"

	MsgInvalidUserID  = "invalidUserID"
	MsgUserNotFound   = "userNotFound"
	MsgFailListUser   = "failListUser"
	MsgFailGetUser    = "failGetUser"
	MsgFailCreateUser = "failCreateUser"
	MsgFailUpdateUser = "failUpdateUser"
	MsgFailDeleteUser = "failDeleteUser"

	MsgConflict = "conflict"
)

package mqtt

import "fmt"

func TopicUserUtterance(prefix string) string {
	return fmt.Sprintf("%s/user/+/utterance", prefix)
}

func TopicUtterance(prefix, userID string) string {
	return fmt.Sprintf("%s/user/%s/utterance", prefix, userID)
}

func TopicReply(prefix, userID string) string {
	return fmt.Sprintf("%s/user/%s/reply", prefix, userID)
}

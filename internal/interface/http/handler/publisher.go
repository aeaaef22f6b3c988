package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/xiebiao/library/internal/domain/catalog"
	"github.com/xiebiao/library/internal/interface/http/dto"
	"github.com/xiebiao/library/pkg/response"
)

// PublisherHandler 出版社页面处理器
type PublisherHandler struct {
	publishers catalog.PublisherService
	log        *zap.Logger
}

func NewPublisherHandler(publishers catalog.PublisherService, log *zap.Logger) *PublisherHandler {
	return &PublisherHandler{
		publishers: publishers,
		log:        log.Named("publisher"),
	}
}

// List 出版社列表
// @Summary      出版社列表
// @Tags         出版社
// @Produce      html
// @Success      200 {string} string "list-publishers页面"
// @Router       /publisher/list [get]
func (h *PublisherHandler) List(c *gin.Context) {
	publishers, err := h.publishers.FindAll(c.Request.Context())
	if err != nil {
		renderFailure(c, h.log, "查询出版社列表失败", err)
		return
	}
	response.View(c, ViewListPublishers, gin.H{"publishers": publishers})
}

// ShowFormForAdd 新增出版社表单
// @Summary      新增出版社表单
// @Tags         出版社
// @Produce      html
// @Success      200 {string} string "publisher-form页面"
// @Router       /publisher/showFormForAdd [get]
func (h *PublisherHandler) ShowFormForAdd(c *gin.Context) {
	response.View(c, ViewPublisherForm, gin.H{"publishers": catalog.NewPublisher()})
}

// ShowFormForUpdate 编辑出版社表单
// @Summary      编辑出版社表单
// @Tags         出版社
// @Produce      html
// @Param        publisherId query int true "出版社ID"
// @Success      200 {string} string "publisher-form页面或error页面"
// @Failure      400 {string} string "ID格式错误"
// @Router       /publisher/showFormForUpdate [get]
func (h *PublisherHandler) ShowFormForUpdate(c *gin.Context) {
	id, err := parseID(c, "publisherId")
	if err != nil {
		renderBadRequest(c, err)
		return
	}

	publisher, err := h.publishers.FindByID(c.Request.Context(), id)
	if err != nil {
		response.ErrorView(c, http.StatusOK, err)
		return
	}
	response.View(c, ViewPublisherForm, gin.H{"publishers": publisher})
}

// Save 新增或更新出版社
// @Summary      保存出版社
// @Tags         出版社
// @Accept       x-www-form-urlencoded
// @Param        id            formData int    false "出版社ID(新增时为空)"
// @Param        publisherName formData string false "名称"
// @Param        description   formData string false "简介"
// @Success      302 "重定向到/publisher/list"
// @Router       /publisher/save [post]
func (h *PublisherHandler) Save(c *gin.Context) {
	var form dto.PublisherForm
	if err := c.ShouldBind(&form); err != nil {
		renderBindError(c, h.log, err)
		return
	}

	if err := h.publishers.Save(c.Request.Context(), form.ToEntity()); err != nil {
		renderFailure(c, h.log, "保存出版社失败", err)
		return
	}
	response.Redirect(c, "/publisher/list")
}

// Delete 删除出版社
// @Summary      删除出版社
// @Tags         出版社
// @Param        publisherId query int true "出版社ID"
// @Success      302 "重定向到/publisher/list"
// @Router       /publisher/delete [get]
func (h *PublisherHandler) Delete(c *gin.Context) {
	id, err := parseID(c, "publisherId")
	if err != nil {
		renderBadRequest(c, err)
		return
	}

	if err := h.publishers.DeleteByID(c.Request.Context(), id); err != nil {
		renderFailure(c, h.log, "删除出版社失败", err)
		return
	}
	response.Redirect(c, "/publisher/list")
}
